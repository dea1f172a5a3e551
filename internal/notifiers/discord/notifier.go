// Package discord delivers advancement outcomes to a Discord channel.
package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/ironhearth/advance-bot/internal/events"
	"github.com/ironhearth/advance-bot/internal/services/advancement"
)

// Notifier posts user-facing advancement notifications to a channel.
// It implements events.Listener.
type Notifier struct {
	session   *discordgo.Session
	channelID string
}

// NotifierConfig holds configuration for the Discord notifier
type NotifierConfig struct {
	Session   *discordgo.Session
	ChannelID string
}

// New creates a new Discord notifier
func New(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, fmt.Errorf("NotifierConfig is required")
	}
	if cfg.Session == nil {
		return nil, fmt.Errorf("discord session is required")
	}
	if cfg.ChannelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}

	return &Notifier{
		session:   cfg.Session,
		channelID: cfg.ChannelID,
	}, nil
}

// ID implements events.Listener
func (n *Notifier) ID() string {
	return "discord-notifier"
}

// Priority implements events.Listener. Notifications run after the audit
// recorder.
func (n *Notifier) Priority() int {
	return 10
}

// HandleEvent implements events.Listener
func (n *Notifier) HandleEvent(event events.Event) error {
	switch e := event.(type) {
	case *advancement.AppliedEvent:
		return n.notifyApplied(e.Summary)
	case *advancement.RejectedEvent:
		return n.notifyRejected(e)
	default:
		return nil
	}
}

func (n *Notifier) notifyApplied(summary *advancement.Summary) error {
	skillLines := make([]string, 0, len(summary.Skills))
	for _, skill := range summary.Skills {
		if skill.Granted {
			skillLines = append(skillLines, fmt.Sprintf("%s → rank %d", skill.Name, skill.NewRank))
		} else {
			skillLines = append(skillLines, fmt.Sprintf("%s (not granted)", skill.Name))
		}
	}

	var talentLine string
	switch summary.Talent.Action {
	case advancement.TalentActionAdvanced:
		talentLine = fmt.Sprintf("%s advanced to rank %d", summary.Talent.Name, summary.Talent.NewRank)
	case advancement.TalentActionPurchased:
		talentLine = fmt.Sprintf("%s purchased", summary.Talent.Name)
	default:
		talentLine = "skipped"
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s advanced!", summary.CharacterName),
		Color: 0x2ecc71,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Attribute",
				Value:  fmt.Sprintf("%s → %d (advance %d)", summary.Attribute.Label(), summary.NewAttributeTotal, summary.NewAdvances),
				Inline: false,
			},
			{
				Name:   "Skills (+1 each)",
				Value:  strings.Join(skillLines, "\n"),
				Inline: false,
			},
			{
				Name:   "Talent",
				Value:  talentLine,
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("-%d XP, %d remaining", summary.Cost, summary.ExperienceLeft),
		},
	}

	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		return fmt.Errorf("failed to send advancement notification: %w", err)
	}
	return nil
}

func (n *Notifier) notifyRejected(e *advancement.RejectedEvent) error {
	msg := fmt.Sprintf("❌ %s", e.Reason())
	if _, err := n.session.ChannelMessageSend(n.channelID, msg); err != nil {
		return fmt.Errorf("failed to send rejection notification: %w", err)
	}
	return nil
}
