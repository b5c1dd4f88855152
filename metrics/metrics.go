// Package metrics exposes Prometheus counters for the bot's forum moderation actions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/models"
)

// Command results recorded by RecordCommand
const (
	CommandResultSuccess    = "success"
	CommandResultIneligible = "ineligible"
	CommandResultDenied     = "denied"
	CommandResultFailed     = "failed"
)

var (
	autoPinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forumbot_auto_pins_total",
			Help: "Total number of starter message auto-pin attempts by outcome",
		},
		[]string{"outcome"},
	)

	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forumbot_commands_total",
			Help: "Total number of slash command invocations by command and result",
		},
		[]string{"command", "result"},
	)

	commandRegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forumbot_command_registrations_total",
			Help: "Total number of application command registration attempts",
		},
		[]string{"result"},
	)
)

func RecordAutoPin(outcome models.PinOutcome) {
	autoPinsTotal.WithLabelValues(string(outcome)).Inc()
}

func RecordCommand(command, result string) {
	commandsTotal.WithLabelValues(command, result).Inc()
}

func RecordCommandRegistration(err error) {
	result := "success"
	if err != nil {
		result = "failed"
	}
	commandRegistrationsTotal.WithLabelValues(result).Inc()
}
