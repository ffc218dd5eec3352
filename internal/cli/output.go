package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RegisterResult:
		o.printRegisterResult(v)
	case LoginResult:
		o.printLoginResult(v)
	case MeResult:
		o.printMeResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// RegisterResult response type
type RegisterResult struct {
	User User `json:"user"`
}

// LoginResult response type
type LoginResult struct {
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

// MeResult response type
type MeResult struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRegisterResult(r RegisterResult) {
	fmt.Printf("Registered: %s (%s)\n", r.User.Username, r.User.ID)
	fmt.Println("Log in to start a session.")
}

func (o *Output) printLoginResult(l LoginResult) {
	fmt.Printf("Logged in as: %s\n", l.Username)
	fmt.Printf("Token: %s\n", l.SessionToken)
}

func (o *Output) printMeResult(m MeResult) {
	fmt.Printf("User: %s (%s)\n", m.Username, m.UserID)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
