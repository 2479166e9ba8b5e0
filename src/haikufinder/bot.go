package haikufinder

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"runtime/debug"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/lruss/haiku-finder/src/haikufinder/db"
)

type Config struct {
	Token          string
	ReactToHaiku   bool
	ReplyWithHaiku bool
	PositiveReacts []string
	DBPath         string

	Debug bool
}

func (c Config) String() string {
	return fmt.Sprintf("\tReactToHaiku: %t\n\tReplyWithHaiku: %t\n\tDBPath: %s\n",
		c.ReactToHaiku, c.ReplyWithHaiku, c.DBPath)
}

// HaikuFinder is a Discord bot that scans every incoming message for
// accidental haikus: contiguous word runs whose syllables fill 5-7-5.
// Finds are celebrated and, when a database is attached, recorded.
type HaikuFinder struct {
	session *discordgo.Session
	scanner *Scanner
	sqlDB   *sql.DB

	config Config
}

func NewHaikuFinder(config Config, scanner *Scanner, sqlDB *sql.DB) HaikuFinder {
	log.Printf("Haiku Finder Config:\n%v", config)
	return HaikuFinder{
		config:  config,
		scanner: scanner,
		sqlDB:   sqlDB,
	}
}

func (h *HaikuFinder) Open() error {
	var err error
	h.session, err = discordgo.New("Bot " + h.config.Token)
	if err != nil {
		log.Println("error creating Discord session,", err)
		return err
	}

	if h.config.Debug {
		h.session.LogLevel = discordgo.LogDebug
	}

	h.session.AddHandler(h.ReceiveNewMessage)

	h.session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages
	if h.config.ReactToHaiku {
		h.session.Identify.Intents |= discordgo.IntentsGuildMessageReactions | discordgo.IntentsDirectMessageReactions
	}

	err = h.session.Open()
	if err != nil {
		log.Println("error opening connection,", err)
		return err
	}
	return nil
}

func (h *HaikuFinder) Close() error {
	return h.session.Close()
}

func (h *HaikuFinder) ReceiveNewMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic on content, %s, panicking on: %v\n%v", strings.ReplaceAll(m.Content, "\n", "\\n"), r, debug.Stack())
			panic(r)
		}
	}()
	if m.Author.Bot { // prevent SkyNet; don't talk to bots
		return
	}
	if strings.HasPrefix(m.Content, "!haiku") {
		h.HandleCommand(s, m)
		return
	}
	tokens, err := Tokenize(strings.NewReader(m.Content))
	if err != nil {
		log.Println("could not tokenize message content,", err)
		return
	}
	matches := h.scanner.Scan(tokens)
	if len(matches) == 0 {
		return
	}
	log.Printf("found %d haiku in message: %s\n", len(matches), strings.ReplaceAll(m.Content, "\n", "\\n"))
	h.HandleMatches(s, m, matches)
}

func (h *HaikuFinder) HandleCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	command := strings.TrimSpace(strings.TrimPrefix(m.Content, "!haiku"))
	switch command {
	case "random":
		h.serveRandomHaiku(s, m)
	case "help", "":
		_, err := s.ChannelMessageSendReply(m.ChannelID, FinderHelp, m.Reference())
		if err != nil {
			log.Println("could not reply with help text,", err)
		}
	default:
		_, err := s.ChannelMessageSendReply(m.ChannelID, fmt.Sprintf("unknown command %q; try `!haiku help`", command), m.Reference())
		if err != nil {
			log.Println("could not reply to unknown command,", err)
		}
	}
}

const FinderHelp = "I listen for accidental haikus hiding in everyday messages.\n" +
	"`!haiku random` -- serve a random haiku someone once typed without noticing\n" +
	"`!haiku help` -- this message"

func (h *HaikuFinder) HandleMatches(s *discordgo.Session, m *discordgo.MessageCreate, matches []Match) {
	if h.config.ReactToHaiku {
		h.react(s, m, randomString(h.config.PositiveReacts))
	}
	if h.config.ReplyWithHaiku {
		reply := "An accidental haiku:\n" + quote(strings.TrimSpace(matches[0].String()))
		_, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference())
		if err != nil {
			log.Println("could not reply with found haiku,", err)
		}
	}
	if h.sqlDB != nil {
		h.storeMatches(m, matches)
	}
}

func (h *HaikuFinder) storeMatches(m *discordgo.MessageCreate, matches []Match) {
	ctx := context.Background()
	source := m.ChannelID + "/" + m.ID
	for _, match := range matches {
		content := strings.TrimSpace(match.String())
		if err := db.CheckHash(ctx, h.sqlDB, source, match.Start, DuplicateHash(content)); err != nil {
			log.Println("skipping haiku,", err)
			continue
		}
		_, err := db.HaikuDAO.Upsert(ctx, h.sqlDB, db.Haiku{
			Source:   source,
			StartIdx: match.Start,
			Content:  content,
		})
		if err != nil {
			log.Println("could not store haiku,", err)
		}
	}
}

func (h *HaikuFinder) serveRandomHaiku(s *discordgo.Session, m *discordgo.MessageCreate) {
	if h.sqlDB == nil {
		_, err := s.ChannelMessageSendReply(m.ChannelID, "I have no haiku database attached.", m.Reference())
		if err != nil {
			log.Println("could not reply,", err)
		}
		return
	}
	haiku, err := db.HaikuDAO.Random(context.Background(), h.sqlDB)
	if err != nil {
		log.Println("could not fetch random haiku,", err)
		return
	}
	_, err = s.ChannelMessageSendReply(m.ChannelID, quote(haiku.Content), m.Reference())
	if err != nil {
		log.Println("could not reply with random haiku,", err)
	}
}

func (h *HaikuFinder) react(s *discordgo.Session, m *discordgo.MessageCreate, reaction string) {
	err := s.MessageReactionAdd(m.ChannelID, m.Message.ID, reaction)
	if err != nil {
		log.Println("could not add emoji reaction,", err)
		return
	}
}

func randomString(strs []string) string {
	return strs[rand.Intn(len(strs))]
}

func quote(str string) string {
	return "> " + strings.ReplaceAll(str, "\n", "\n> ")
}
