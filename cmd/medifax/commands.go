package main

import (
	"fmt"
	"medifax-client/internal/app/viewmodels"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var app *application
	var offline bool

	rootCmd := &cobra.Command{
		Use:           "medifax",
		Short:         "Book medical appointments from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = newApplication(cmd.Context(), offline)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Shutdown(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Use in-memory demo data signed in as the demo patient")

	current := func() *application { return app }

	rootCmd.AddCommand(loginCmd(current))
	rootCmd.AddCommand(logoutCmd(current))
	rootCmd.AddCommand(registerCmd(current))
	rootCmd.AddCommand(meCmd(current))
	rootCmd.AddCommand(doctorsCmd(current))
	rootCmd.AddCommand(doctorCmd(current))
	rootCmd.AddCommand(bookCmd(current))
	rootCmd.AddCommand(appointmentsCmd(current))
	return rootCmd
}

func loginCmd(app func() *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			vm := viewmodels.NewSignIn(app().Patients, app().Tokens, app().Bootstrap.Logger)
			defer vm.Close()

			vm.Login(email, password)
			state, err := settle(cmd.Context(), vm.Session)
			renderIntents(cmd.OutOrStdout(), vm.DrainIntents())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", state.Data.Subject)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(app func() *application) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			vm := viewmodels.NewProfile(app().Patients, app().Tokens, app().Bootstrap.InternalConfig, app().Bootstrap.Logger)
			defer vm.Close()

			err := vm.Logout(cmd.Context())
			if err != nil {
				return err
			}
			renderIntents(cmd.OutOrStdout(), vm.DrainIntents())
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func registerCmd(app func() *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a patient account",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			fullName, _ := cmd.Flags().GetString("full-name")

			vm := viewmodels.NewSignUp(app().Patients, app().Bootstrap.Logger)
			defer vm.Close()

			vm.Register(email, password, fullName)
			state, err := settle(cmd.Context(), vm.Patient)
			renderIntents(cmd.OutOrStdout(), vm.DrainIntents())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s, you can now sign in\n", state.Data.Email)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password, at least 6 characters")
	cmd.Flags().String("full-name", "", "Full name shown to doctors")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("full-name")
	return cmd
}

func meCmd(app func() *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			withAppointments, _ := cmd.Flags().GetBool("appointments")

			vm := viewmodels.NewProfile(app().Patients, app().Tokens, app().Bootstrap.InternalConfig, app().Bootstrap.Logger)
			defer vm.Close()

			vm.Mount()
			state, err := settle(cmd.Context(), vm.Patient)
			renderIntents(cmd.OutOrStdout(), vm.DrainIntents())
			if err != nil {
				return err
			}

			renderPatient(cmd.OutOrStdout(), state.Data, vm.ProfileImageURL())
			if !withAppointments || !vm.OpenAppointments() {
				return nil
			}
			renderIntents(cmd.OutOrStdout(), vm.DrainIntents())
			return listAppointments(cmd, app())
		},
	}
	cmd.Flags().Bool("appointments", false, "Open the appointments of the patient afterwards")
	return cmd
}

func doctorsCmd(app func() *application) *cobra.Command {
	return &cobra.Command{
		Use:   "doctors",
		Short: "List doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			vm := viewmodels.NewDoctors(app().Doctors, app().Bootstrap.Logger)
			defer vm.Close()

			vm.Mount()
			state, err := settle(cmd.Context(), vm.Doctors)
			renderIntents(cmd.OutOrStdout(), vm.DrainIntents())
			if err != nil {
				return err
			}

			if len(*state.Data) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No doctors yet.")
			}
			for i := range *state.Data {
				renderDoctor(cmd.OutOrStdout(), &(*state.Data)[i])
			}
			return nil
		},
	}
}

func doctorCmd(app func() *application) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor <id>",
		Short: "Show one doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vm := viewmodels.NewDoctorDetail(app().Doctors, app().Patients, app().Appointments, app().Bootstrap.Logger)
			defer vm.Close()

			err := vm.Mount(args[0])
			if err != nil {
				return err
			}
			state, err := settle(cmd.Context(), vm.Doctor)
			renderIntents(cmd.OutOrStdout(), vm.DrainIntents())
			if err != nil {
				return err
			}

			renderDoctor(cmd.OutOrStdout(), state.Data)
			return nil
		},
	}
}

func bookCmd(app func() *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book <doctor-id>",
		Short: "Request an appointment with a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			description, _ := cmd.Flags().GetString("description")

			vm := viewmodels.NewDoctorDetail(app().Doctors, app().Patients, app().Appointments, app().Bootstrap.Logger)
			defer vm.Close()

			err := vm.Mount(args[0])
			if err != nil {
				return err
			}
			_, err = settle(cmd.Context(), vm.Doctor)
			if err != nil {
				renderIntents(cmd.OutOrStdout(), vm.DrainIntents())
				return err
			}

			err = vm.CreateAppointment(description, date)
			if err != nil {
				return err
			}
			state, err := settle(cmd.Context(), vm.Booking)
			renderIntents(cmd.OutOrStdout(), vm.DrainIntents())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Appointment requested:")
			renderAppointment(cmd.OutOrStdout(), state.Data)
			return nil
		},
	}
	cmd.Flags().String("date", "", "Requested date, for example 2024-05-01")
	cmd.Flags().String("description", "", "Reason for the visit, at most 255 characters")
	return cmd
}

func appointmentsCmd(app func() *application) *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "List your appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listAppointments(cmd, app())
		},
	}
}

func listAppointments(cmd *cobra.Command, app *application) error {
	vm := viewmodels.NewAppointments(app.Appointments, app.Bootstrap.Logger)
	defer vm.Close()

	vm.Mount()
	state, err := settle(cmd.Context(), vm.Appointments)
	renderIntents(cmd.OutOrStdout(), vm.DrainIntents())
	if err != nil {
		return err
	}

	if len(*state.Data) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No appointments yet.")
	}
	for i := range *state.Data {
		renderAppointment(cmd.OutOrStdout(), &(*state.Data)[i])
	}
	return nil
}
