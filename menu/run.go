package menu

import (
	"context"
	"fmt"

	"finledger/commands"
)

// Run drives the interactive loop until the user exits. Every action is
// wrapped in the timing decorator.
func Run(ctx context.Context, m Menu, d *Deps) {
	for {
		Draw(m)
		idx, err := ReadIndex(len(m.Items))
		if err != nil {
			fmt.Println("Invalid input")
			WaitEnter()
			fmt.Println()
			continue
		}

		item := m.Items[idx-1]
		if item.Key == "exit" || item.Key == "" {
			fmt.Println("Bye!")
			return
		}

		key := item.Key
		cmd := commands.NewTimed(commands.NewFuncCommand(item.Key, func(ctx context.Context) error {
			return Execute(ctx, key, d)
		}), d.Log)

		if err := cmd.Execute(ctx); err != nil {
			fmt.Println("Error:", err)
		}

		WaitEnter()
		fmt.Println()
	}
}
