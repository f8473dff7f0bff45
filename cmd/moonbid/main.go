// Command moonbid runs one full simulated Moon Bid game with random bots
// and prints the final report. Configuration comes from the environment
// (optionally via a .env file):
//
//	MOONBID_SEED     uint64 engine seed (default 1)
//	MOONBID_MODE     standard|eclipse|solstice|equinox|ancestral|cooperative
//	MOONBID_PHASE    lunar phase index 0-7 (default 4, Full Moon)
//	MOONBID_SEASON   season index 0-3 (default 0, Spring)
//	MOONBID_PLAYERS  player count (default 4)
//	LOG_LEVEL        logrus level (default info)
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/pointlesslygaychipmunk/coven-sub003/engine"
	"github.com/pointlesslygaychipmunk/coven-sub003/internal/game"
	"github.com/pointlesslygaychipmunk/coven-sub003/internal/sim"
)

var modesByName = map[string]engine.Mode{
	"standard":    engine.ModeStandard,
	"eclipse":     engine.ModeEclipse,
	"solstice":    engine.ModeSolstice,
	"equinox":     engine.ModeEquinox,
	"ancestral":   engine.ModeAncestral,
	"cooperative": engine.ModeCooperative,
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	seed := uint64(envInt("MOONBID_SEED", 1))
	mode, ok := modesByName[os.Getenv("MOONBID_MODE")]
	if !ok {
		mode = engine.ModeStandard
	}
	phase := engine.LunarPhase(envInt("MOONBID_PHASE", int(engine.FullMoon)))
	season := engine.Season(envInt("MOONBID_SEASON", int(engine.Spring)))
	players := envInt("MOONBID_PLAYERS", 4)

	seats := make([]game.Seat, players)
	for i := range seats {
		seats[i] = game.Seat{ID: uuid.New(), Name: fmt.Sprintf("Bot %d", i+1)}
	}

	match, err := game.NewMatch(seats, game.MatchConfig{
		Mode:       mode,
		LunarPhase: phase,
		Season:     season,
		Seed:       seed,
		Logger:     log,
		Broadcast: func(ev game.MatchEvent) {
			log.WithFields(logrus.Fields{"event": ev.Type, "round": ev.Round}).Debug("match event")
		},
	})
	if err != nil {
		log.WithError(err).Fatal("failed to open match")
	}

	bot := sim.New(int64(seed))
	for turns := 0; !match.Finished(); turns++ {
		if turns > 10000 {
			log.Fatal("simulation did not terminate")
		}
		state := match.Snapshot()
		switch state.Phase {
		case engine.PhaseBidding:
			for _, seat := range seats {
				snap := match.Snapshot()
				if snap.Phase != engine.PhaseBidding {
					break
				}
				if err := match.PlaceBid(seat.ID, bot.Bid(snap, seat.ID.String())); err != nil {
					log.WithError(err).Fatal("bot bid rejected")
				}
			}
		case engine.PhasePlaying:
			current := match.CurrentPlayer()
			cardID, ok := bot.Play(state, current.String())
			if !ok {
				log.Fatal("bot has no legal play")
			}
			if err := match.PlayCard(current, cardID); err != nil {
				log.WithError(err).Fatal("bot play rejected")
			}
		default:
			log.WithField("phase", state.Phase.String()).Fatal("unexpected phase in simulation loop")
		}
	}

	report, err := match.Report()
	if err != nil {
		log.WithError(err).Fatal("no final report")
	}
	log.WithFields(logrus.Fields{
		"winners":  report.WinnerIDs,
		"scores":   report.Scores,
		"team_win": report.TeamWin,
	}).Info("game complete")
	for player, grants := range report.Rewards {
		for _, g := range grants {
			log.WithFields(logrus.Fields{
				"player": player,
				"item":   g.Item,
				"qty":    g.Quantity,
			}).Info("reward earned")
		}
	}
}
