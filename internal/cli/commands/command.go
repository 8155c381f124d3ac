package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/khalilrez/food-log-api/internal/config"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "login".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "login <login> <password>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// AuthCommand — команда, которой нужен сохранённый access-токен (см. login).
type AuthCommand interface {
	Command
	RequiresAuth() bool
}

func requiresAuth(c Command) bool {
	ac, ok := c.(AuthCommand)
	return ok && ac.RequiresAuth()
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage builds a help text for all commands.
// Команды с токеном выводятся отдельной группой.
func FormatGlobalUsage() string {
	var open, authed []Command
	for _, c := range List() {
		if requiresAuth(c) {
			authed = append(authed, c)
		} else {
			open = append(open, c)
		}
	}

	var b strings.Builder
	b.WriteString("FoodLog CLI\n\n")
	b.WriteString("Usage:\n  foodlog [--base-url <host:port>] [--https] [--token-file <path>] <command> [args]\n")
	writeGroup(&b, "Commands:", open)
	writeGroup(&b, "Commands that need login (Authorization: Bearer):", authed)
	b.WriteString("\nRun 'foodlog help <command>' for the usage of one command.\n")
	return b.String()
}

func writeGroup(b *strings.Builder, title string, cmds []Command) {
	if len(cmds) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", title)
	for _, c := range cmds {
		fmt.Fprintf(b, "  %-60s %s\n", c.Usage(), c.Description())
	}
}
