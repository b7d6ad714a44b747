package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/gocongress/congress-api/internal/models"
)

type Notifier interface {
	NotifyRegistration(user models.User, attendee models.Attendee, planCount int) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyRegistration(user models.User, attendee models.Attendee, planCount int) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	name := attendee.FullName()
	if attendee.Anonymous {
		name = "an anonymous attendee"
	}

	rank := "non-player"
	if attendee.IsPlayer {
		rank = fmt.Sprintf("rank code %d", attendee.Rank)
	}

	message := fmt.Sprintf("🎉 **Registration Update**\n**Account:** %s (<@%s>)\n**Attendee:** %s\n**Year:** %d\n**Rank:** %s\n**Plans selected:** %d",
		user.Username,
		user.DiscordID,
		name,
		attendee.Year,
		rank,
		planCount,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
