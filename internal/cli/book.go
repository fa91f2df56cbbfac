package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"metzenhof/internal/widget"
)

func newBookCmd(e *env) *cobra.Command {
	var f widget.Form
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a table and print the confirmation link",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := widget.NewSubmitter(e.restaurant, e.api(e.client.APIURL))
			s.OnStage = func(st widget.Stage) {
				if st.Busy() {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s...\n", st)
				}
			}

			conf, err := s.Submit(cmd.Context(), f)
			var verr *widget.ValidationError
			switch {
			case errors.As(err, &verr):
				return errors.New(verr.Message)
			case errors.Is(err, widget.ErrNoTableAvailable):
				return errors.New(widget.MsgNoTable)
			case err != nil:
				return err
			}

			out := cmd.OutOrStdout()
			if conf.Demo {
				fmt.Fprintln(cmd.ErrOrStderr(), widget.MsgDemoWarning)
			}
			fmt.Fprintf(out, "Reservierungscode: %s (Tisch %s)\n", conf.Code, conf.Table)
			fmt.Fprintln(out, conf.RedirectURL(e.client.ConfirmationURL))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.Date, "date", "", "date as YYYY-MM-DD")
	fl.StringVar(&f.Time, "time", "", "start time as HH:MM")
	fl.IntVar(&f.Guests, "guests", 0, "number of guests")
	fl.StringVar(&f.FirstName, "first-name", "", "first name")
	fl.StringVar(&f.LastName, "last-name", "", "last name")
	fl.StringVar(&f.Email, "email", "", "email address")
	fl.StringVar(&f.Phone, "phone", "", "phone number")
	fl.StringVar(&f.Notes, "notes", "", "notes for the restaurant")
	fl.BoolVar(&f.PrivacyAccepted, "accept-privacy", false, "accept the privacy policy")
	return cmd
}
