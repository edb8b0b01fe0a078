package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/srshearer/slack-announce/pkg/domain/interfaces"
	"github.com/srshearer/slack-announce/pkg/domain/model"
)

var (
	payloadHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("99"))

	payloadStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// DisplayManager prints payloads and delivery results for the operator
type DisplayManager struct {
	w       io.Writer
	spinner *spinner.Spinner
}

func NewDisplayManager(w io.Writer) interfaces.Display {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Posting to Slack..."

	return &DisplayManager{
		w:       w,
		spinner: s,
	}
}

// ShowPayload prints the complete outgoing payload
func (d *DisplayManager) ShowPayload(payload *model.Payload) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fmt.Fprintf(d.w, "json payload: %+v\n", payload)
		return
	}

	fmt.Fprintln(d.w, payloadHeaderStyle.Render("json payload:"))
	fmt.Fprintln(d.w, payloadStyle.Render(string(data)))
}

func (d *DisplayManager) ShowDryRun() {
	fmt.Fprintln(d.w, color.New(color.FgYellow).Sprint("[Dry run. Not posting message.]"))
}

// StartSending shows a spinner while the request is in flight, only when
// attached to a terminal
func (d *DisplayManager) StartSending(target model.DeliveryTarget) {
	if color.NoColor {
		return
	}
	if target.Channel != "" {
		d.spinner.Suffix = " Posting to " + target.Channel + "..."
	}
	d.spinner.Start()
}

func (d *DisplayManager) ShowResult(result *model.DeliveryResult) {
	if d.spinner.Active() {
		d.spinner.Stop()
	}

	switch result.State {
	case model.DeliverySent:
		fmt.Fprintln(d.w, color.New(color.FgGreen).Sprintf("Result: [%d] %s", result.StatusCode, result.Body))
	case model.DeliveryFailed:
		if result.StatusCode == 0 {
			fmt.Fprintln(d.w, color.New(color.FgRed).Sprint("Result: [no response]"))
			return
		}
		fmt.Fprintln(d.w, color.New(color.FgRed).Sprintf("Result: [%d] %s", result.StatusCode, result.Body))
	}
}
