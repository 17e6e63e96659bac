package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/anixlabs/profilectl/internal/envelope"
)

// printEnvelope renders env as indented JSON on stdout.
func printEnvelope(env envelope.Envelope) error {
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot render envelope: %w", err)
	}
	fmt.Println(string(b))
	return nil
}
