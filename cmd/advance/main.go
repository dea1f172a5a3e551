// Command advance applies a full advancement to a character from the
// command line: one attribute advance, three skill ranks, and a talent
// action. It drives the same wizard and commit path the bot uses.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	catalogclient "github.com/ironhearth/advance-bot/internal/clients/catalog"
	"github.com/ironhearth/advance-bot/internal/config"
	"github.com/ironhearth/advance-bot/internal/domain/shared"
	"github.com/ironhearth/advance-bot/internal/events"
	auditrec "github.com/ironhearth/advance-bot/internal/notifiers/audit"
	"github.com/ironhearth/advance-bot/internal/notifiers/console"
	discordnotify "github.com/ironhearth/advance-bot/internal/notifiers/discord"
	"github.com/ironhearth/advance-bot/internal/repositories/advancements"
	"github.com/ironhearth/advance-bot/internal/repositories/characters"
	"github.com/ironhearth/advance-bot/internal/services/advancement"
)

func main() {
	characterID := flag.String("character", "", "character ID to advance (required)")
	attribute := flag.String("attribute", "", "attribute key to advance (required)")
	skills := flag.String("skills", "", "comma-separated list of exactly three skill names (required)")
	advanceTalent := flag.String("advance-talent", "", "owned talent ID to advance")
	purchaseTalent := flag.String("purchase-talent", "", "catalog talent ID to purchase")
	flag.Parse()

	if *characterID == "" || *attribute == "" || *skills == "" {
		flag.Usage()
		log.Fatal("character, attribute and skills are required")
	}
	if (*advanceTalent == "") == (*purchaseTalent == "") {
		log.Fatal("exactly one of -advance-talent or -purchase-talent is required")
	}

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Repositories: Redis when configured, in-memory otherwise.
	var characterRepo characters.Repository
	var advancementRepo advancements.Repository
	var redisClient *redis.Client

	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		characterRepo = characters.NewRedisRepository(&characters.RedisRepoConfig{
			Client: redisClient,
		})
		advancementRepo = advancements.NewRedisRepository(&advancements.RedisRepoConfig{
			Client: redisClient,
		})
		log.Println("Using Redis for persistence")
	} else {
		characterRepo = characters.NewInMemoryRepository()
		advancementRepo = advancements.NewInMemoryRepository()
		log.Println("No REDIS_URL found, using in-memory repositories")
	}

	// Content catalog client
	catalog, err := catalogclient.New(&catalogclient.Config{
		HttpClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    cfg.Catalog.BaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to create catalog client: %v", err)
	}

	prewarmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := catalog.Prewarm(prewarmCtx); err != nil {
		log.Fatalf("Failed to load content catalog: %v", err)
	}

	// Event listeners: audit first, then user notification.
	bus := events.NewBus()
	recorder := auditrec.New(&auditrec.RecorderConfig{Repository: advancementRepo})
	bus.Subscribe(events.AdvancementApplied, recorder)

	if cfg.Discord.Token != "" {
		session, err := discordgo.New("Bot " + cfg.Discord.Token)
		if err != nil {
			log.Fatalf("Failed to create Discord session: %v", err)
		}
		notifier, err := discordnotify.New(&discordnotify.NotifierConfig{
			Session:   session,
			ChannelID: cfg.Discord.ChannelID,
		})
		if err != nil {
			log.Fatalf("Failed to create Discord notifier: %v", err)
		}
		bus.Subscribe(events.AdvancementApplied, notifier)
		bus.Subscribe(events.AdvancementRejected, notifier)
		log.Println("Discord notifications enabled")
	} else {
		notifier := console.New()
		bus.Subscribe(events.AdvancementApplied, notifier)
		bus.Subscribe(events.AdvancementRejected, notifier)
	}

	resolution := advancement.ResolutionSkip
	if cfg.Advancement.StrictResolution {
		resolution = advancement.ResolutionFail
	}

	svc := advancement.NewService(&advancement.ServiceConfig{
		Repository: characterRepo,
		Catalog:    catalog,
		Bus:        bus,
		Cost:       cfg.Advancement.Cost,
		Resolution: resolution,
	})

	// Drive the wizard with the flag selections.
	wizard, err := svc.StartWizard(ctx, *characterID)
	if err != nil {
		log.Fatalf("Failed to start wizard: %v", err)
	}

	wizard.SelectAttribute(shared.Attribute(*attribute))
	if !wizard.Next() {
		log.Fatalf("Invalid attribute selection: %q", *attribute)
	}

	for _, name := range strings.Split(*skills, ",") {
		wizard.ToggleSkill(strings.TrimSpace(name))
	}
	if !wizard.Next() {
		log.Fatalf("Exactly %d distinct skills are required, got %q", advancement.MaxSelectedSkills, *skills)
	}

	if *advanceTalent != "" {
		wizard.SetTalentMode(advancement.TalentModeAdvance)
		wizard.SelectTalent(*advanceTalent)
	} else {
		wizard.SetTalentMode(advancement.TalentModePurchase)
		wizard.SelectTalent(*purchaseTalent)
	}

	summary, err := wizard.Complete(ctx)
	if err != nil {
		log.Fatalf("Advancement failed: %v", err)
	}

	log.Printf("Done: %s", summary.Text())
}
