package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var sheetName string

var createSheetCmd = &cobra.Command{
	Use:   "create-sheet [owner-id]",
	Short: "Create an empty sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(v1alpha1.MethodCreateSheet, map[string]any{
			v1alpha1.KeyOwnerID: args[0],
			v1alpha1.KeyName:    sheetName,
		})
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo [sheet-id]",
	Short: "Undo the latest edit of a sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(v1alpha1.MethodUndo, map[string]any{v1alpha1.KeySheetID: args[0]})
	},
}

var redoCmd = &cobra.Command{
	Use:   "redo [sheet-id]",
	Short: "Redo the latest undone edit of a sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(v1alpha1.MethodRedo, map[string]any{v1alpha1.KeySheetID: args[0]})
	},
}

var rollDamageCmd = &cobra.Command{
	Use:   "roll-damage [sheet-id] [thrust|swing]",
	Short: "Roll a sheet's basic damage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(v1alpha1.MethodRollDamage, map[string]any{
			v1alpha1.KeySheetID: args[0],
			v1alpha1.KeyKind:    args[1],
		})
	},
}

func init() {
	createSheetCmd.Flags().StringVar(&sheetName, "name", "", "Sheet name")
}
