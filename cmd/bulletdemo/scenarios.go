package main

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/bulletstream/pkg/bullet"
	"github.com/arthur-debert/bulletstream/pkg/global"
	"github.com/arthur-debert/bulletstream/pkg/style"
	"github.com/arthur-debert/bulletstream/pkg/term"
)

var (
	scenarioNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	scenarioDescStyle = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		scenarios := []struct{ name, desc string }{
			{"build", "a full build run: headers, bullets, a warning and streamed command output"},
			{"timer", "a background timer ticking while a slow task runs"},
			{"global", "the free functions and a locked capture scope"},
		}
		for _, s := range scenarios {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
				scenarioNameStyle.Render(s.name),
				scenarioDescStyle.Render(s.desc))
		}
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the scripted build scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := bullet.New(term.Destination(os.Stdout)).
			H1("Example Application").
			Bullet("Resolving dependencies").
			SubBullet("Reading lockfile").
			SubBullet(fmt.Sprintf("Using %s from %s", style.Value("3.1.3"), style.Value("Gemfile.lock"))).
			Warning("Cache miss, fetching everything from scratch").
			Done()

		stream := out.Bullet("Compiling").
			StartStream(fmt.Sprintf("Running %s", style.Command("make all")))

		c := exec.Command("sh", "-c", "echo compiling core; sleep 1; echo compiling cli; echo done")
		c.Stdout = stream
		c.Stderr = stream
		if err := c.Run(); err != nil {
			stream.Done().Error(fmt.Sprintf("Command failed: %s", err))
			return err
		}

		stream.Done().
			Bullet(fmt.Sprintf("See %s for details", style.URL("https://example.com/docs"))).
			Done()
		return nil
	},
}

var timerSleep time.Duration

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run the background timer scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		timer := bullet.New(term.Destination(os.Stdout)).
			H2("Background work").
			Bullet("Running tests").
			StartTimer("integration suite")

		time.Sleep(timerSleep)

		timer.Done("42 passed").Done()
		return nil
	},
}

var globalCmd = &cobra.Command{
	Use:   "global",
	Short: "Run the global free-function scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		global.SetWriter(term.Destination(os.Stdout))

		global.H2("Script output")
		global.Bullet("Step one")
		global.SubBullet("detail")
		global.Warning("Anyone can write here, spacing stays correct")

		global.WithLockedWriter(term.Destination(os.Stderr), func() {
			global.Bullet("This scope had the writer to itself")
		})

		global.AllDone(time.Time{})
		return nil
	},
}

func init() {
	timerCmd.Flags().DurationVar(&timerSleep, "sleep", 3*time.Second, "How long the timed task runs")
}
