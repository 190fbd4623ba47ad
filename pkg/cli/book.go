package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"go.seanlatimer.dev/tripdeck/internal/catalog"
	"go.seanlatimer.dev/tripdeck/internal/session"
)

func newBookCommand(opts *Options) *cobra.Command {
	var (
		trip  string
		name  string
		email string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Submit a booking request (simulated, nothing is sent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			state := session.New()

			c, err := opts.loadCatalog(cmd)
			var loadErr *catalog.LoadError
			switch {
			case err == nil:
				state, _ = session.Apply(state, session.Loaded{Catalog: c})
			case errors.As(err, &loadErr):
				// Custom trips can still be booked without a catalog.
				state, _ = session.Apply(state, session.LoadFailed{Err: err})
			default:
				return err
			}

			if trip != catalog.CustomDestination {
				if _, ok := state.Catalog.ResolveDestination(trip); !ok {
					if state.Status == session.StatusFailed {
						return err
					}
					return fmt.Errorf("trip %q: %w", trip, catalog.ErrNotFound)
				}
			}

			state, _ = session.Apply(state, session.BookingOpened{})
			state, _ = session.Apply(state, session.DestinationChosen{Value: trip})
			state, _ = session.Apply(state, session.BookingSubmitted{
				Name:      name,
				Email:     email,
				Reference: session.NewReference(),
			})
			if state.Booking.Error != "" {
				return session.ValidateBooking(name, email)
			}

			destination := catalog.CustomDestinationLabel
			if state.Selected != nil {
				destination = state.Selected.Title
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Destination: %s\n", destination)
			fmt.Fprintln(out, state.Booking.Confirmation)
			return nil
		},
	}

	cmd.Flags().StringVar(&trip, "trip", catalog.CustomDestination, "Package id, or custom for a trip not listed")
	cmd.Flags().StringVar(&name, "name", "", "Traveller name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	return cmd
}
