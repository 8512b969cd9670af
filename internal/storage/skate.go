// Package storage provides data persistence for CodeQuest using Skate KV store.
// Skate is a key-value store from Charm that provides encrypted, cloud-synced storage.
package storage

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/AutumnsGrove/codequest/internal/planner"
)

// Skate key names used for storing planner data.
const (
	KeyPlayer = "codequest.player" // Player save state storage key
	KeyPlan   = "codequest.plan"   // Last computed plan storage key
)

// SkateClient provides a wrapper around the Skate CLI for data persistence.
// It handles JSON serialization and CLI interaction for saving/loading
// planner state.
type SkateClient struct {
	// skatePath is the path to the skate binary (default: "skate" in PATH)
	skatePath string
}

// NewSkateClient creates a new Skate storage client.
// It verifies that the Skate CLI is available in the system PATH.
//
// Returns:
//   - *SkateClient: A new Skate client instance
//   - error: An error if Skate is not installed or not found in PATH
func NewSkateClient() (*SkateClient, error) {
	skatePath, err := exec.LookPath("skate")
	if err != nil {
		return nil, fmt.Errorf("skate CLI not found in PATH: %w (install from https://github.com/charmbracelet/skate)", err)
	}

	return &SkateClient{
		skatePath: skatePath,
	}, nil
}

// SavePlayer persists a player's save state to Skate storage.
//
// Parameters:
//   - state: The save state to persist
//
// Returns:
//   - error: An error if serialization or storage fails
func (s *SkateClient) SavePlayer(state planner.SaveState) error {
	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal player state to JSON: %w", err)
	}

	if err := s.setKey(KeyPlayer, string(jsonData)); err != nil {
		return fmt.Errorf("failed to save player state to Skate: %w", err)
	}

	return nil
}

// LoadPlayer retrieves a player's save state from Skate storage.
//
// Returns:
//   - planner.SaveState: The loaded state
//   - error: An error if the state doesn't exist, or if retrieval/deserialization fails
func (s *SkateClient) LoadPlayer() (planner.SaveState, error) {
	jsonData, err := s.getKey(KeyPlayer)
	if err != nil {
		return planner.SaveState{}, fmt.Errorf("failed to load player state from Skate: %w", err)
	}

	var state planner.SaveState
	if err := json.Unmarshal([]byte(jsonData), &state); err != nil {
		return planner.SaveState{}, fmt.Errorf("failed to unmarshal player state JSON: %w", err)
	}

	return state, nil
}

// SavePlan persists the last computed plan to Skate storage.
//
// Parameters:
//   - plan: The plan snapshot to save
//
// Returns:
//   - error: An error if serialization or storage fails
func (s *SkateClient) SavePlan(plan planner.PlanSnapshot) error {
	jsonData, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan to JSON: %w", err)
	}

	if err := s.setKey(KeyPlan, string(jsonData)); err != nil {
		return fmt.Errorf("failed to save plan to Skate: %w", err)
	}

	return nil
}

// LoadPlan retrieves the last computed plan from Skate storage.
//
// Returns:
//   - planner.PlanSnapshot: The loaded plan (zero value if none exists)
//   - error: An error if retrieval or deserialization fails
func (s *SkateClient) LoadPlan() (planner.PlanSnapshot, error) {
	jsonData, err := s.getKey(KeyPlan)
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "no such key") {
			return planner.PlanSnapshot{}, nil
		}
		return planner.PlanSnapshot{}, fmt.Errorf("failed to load plan from Skate: %w", err)
	}

	var plan planner.PlanSnapshot
	if err := json.Unmarshal([]byte(jsonData), &plan); err != nil {
		return planner.PlanSnapshot{}, fmt.Errorf("failed to unmarshal plan JSON: %w", err)
	}

	return plan, nil
}

// DeletePlayer removes the saved player state from Skate storage.
// This is useful for starting fresh or resetting progress.
//
// Returns:
//   - error: An error if deletion fails
func (s *SkateClient) DeletePlayer() error {
	if err := s.deleteKey(KeyPlayer); err != nil {
		return fmt.Errorf("failed to delete player state from Skate: %w", err)
	}
	return nil
}

// DeletePlan removes the saved plan from Skate storage.
// This is useful for starting fresh or resetting progress.
//
// Returns:
//   - error: An error if deletion fails
func (s *SkateClient) DeletePlan() error {
	if err := s.deleteKey(KeyPlan); err != nil {
		return fmt.Errorf("failed to delete plan from Skate: %w", err)
	}
	return nil
}

// PlayerExists checks if a player save state is stored in Skate.
// This is useful for determining if this is a first run.
//
// Returns:
//   - bool: true if a save state exists, false otherwise
func (s *SkateClient) PlayerExists() bool {
	_, err := s.getKey(KeyPlayer)
	return err == nil
}

// setKey stores a value in Skate using the CLI.
// Executes: skate set <key> <value>
func (s *SkateClient) setKey(key, value string) error {
	cmd := exec.Command(s.skatePath, "set", key, value)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("skate set failed: %w (output: %s)", err, string(output))
	}

	return nil
}

// getKey retrieves a value from Skate using the CLI.
// Executes: skate get <key>
func (s *SkateClient) getKey(key string) (string, error) {
	cmd := exec.Command(s.skatePath, "get", key)

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := string(exitErr.Stderr)
			if strings.Contains(stderr, "not found") || strings.Contains(stderr, "no such key") {
				return "", fmt.Errorf("key %s not found in Skate", key)
			}
			return "", fmt.Errorf("skate get failed: %w (stderr: %s)", err, stderr)
		}
		return "", fmt.Errorf("skate get failed: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}

// deleteKey removes a value from Skate using the CLI.
// Executes: skate delete <key>
func (s *SkateClient) deleteKey(key string) error {
	cmd := exec.Command(s.skatePath, "delete", key)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("skate delete failed: %w (output: %s)", err, string(output))
	}

	return nil
}
