package cli

import (
	"fmt"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/app"
	"github.com/MKhiriev/go-arr-keeper/internal/network"
	"github.com/MKhiriev/go-arr-keeper/models"
	"github.com/spf13/cobra"
)

func (st *rootState) backendCommand(kind models.BackendKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: fmt.Sprintf("Run one %s operation", kind.Title()),
		// Runnable so that an unknown operation fails argument validation
		// instead of printing help.
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	for _, op := range action.Supported(kind) {
		spec, _ := action.Lookup(op)
		cmd.AddCommand(st.operationCommand(kind, spec))
	}
	return cmd
}

// operationCommand builds `arrkeeper <kind> <operation>`. The action is
// validated before any configuration is loaded, so usage mistakes never
// reach the network.
func (st *rootState) operationCommand(kind models.BackendKind, spec action.Spec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(spec.Operation),
		Short: spec.Description,
		Args:  cobra.NoArgs,
	}

	binder, err := bindPayload(cmd, spec)
	if err != nil {
		panic(fmt.Sprintf("cli: %v", err))
	}

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		a, err := action.New(kind, spec.Operation, binder.payload(cmd.Flags()))
		if err != nil {
			return fail(cmd.ErrOrStderr(), err)
		}

		r, application, err := st.newRunner(cmd)
		if err != nil {
			return err
		}
		defer application.Close()

		if !application.Executor().Has(kind) {
			return fail(cmd.ErrOrStderr(), app.NewValidationError(kind, string(spec.Operation), network.ErrBackendNotConfigured))
		}
		return codeErr(r.Run(cmd.Context(), a))
	}

	return cmd
}
