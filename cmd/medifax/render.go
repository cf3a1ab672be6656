package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"medifax-client/internal/app/models"
	"medifax-client/internal/app/viewstate"
	"time"
)

const settleTimeout = 2 * time.Minute

// settle waits for the pipeline and turns an Error state into a command error
// so the process exits non-zero.
func settle[T any](ctx context.Context, p *viewstate.Pipeline[T]) (viewstate.State[T], error) {
	ctx, cancel := context.WithTimeout(ctx, settleTimeout)
	defer cancel()

	state, err := p.AwaitSettled(ctx)
	if err != nil {
		return state, err
	}
	if !state.IsSettled() {
		return state, errors.New("nothing was requested")
	}
	if state.Status == viewstate.Error {
		return state, errors.New(state.Message)
	}
	return state, nil
}

func renderIntents(out io.Writer, intents []viewstate.Intent) {
	for _, intent := range intents {
		fmt.Fprintf(out, "-> %s\n", intent)
	}
}

func renderPatient(out io.Writer, patient *models.Patient, imageURL string) {
	if patient == nil {
		fmt.Fprintln(out, "No patient profile is attached to this account yet.")
		return
	}
	fmt.Fprintf(out, "%s <%s>\n", patient.FullName, patient.Email)
	fmt.Fprintf(out, "  id: %s\n", patient.ID)
	if imageURL != "" {
		fmt.Fprintf(out, "  image: %s\n", imageURL)
	}
}

func renderDoctor(out io.Writer, doctor *models.Doctor) {
	if doctor == nil {
		fmt.Fprintln(out, "Doctor not found.")
		return
	}
	availability := "not available"
	if doctor.IsAvailable {
		availability = "available"
	}
	fmt.Fprintf(out, "[%s] %s, %s (%s)\n", doctor.ID, doctor.FullName, doctor.Speciality, availability)
}

func renderAppointment(out io.Writer, appointment *models.Appointment) {
	fmt.Fprintf(out, "[%s] %s with doctor %s: %s\n", appointment.ID, appointment.Date, appointment.DoctorID, appointment.Description)
}
