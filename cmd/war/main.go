package main

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/HeyParkerJ/war/domain/war"
)

const maxRounds = 10000

func main() {
	// Create a new slog logger backed by the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("W", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ar", pterm.FgDarkGray.ToStyle()),
	).Render()

	var names []string
	for {
		name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter a player name. When done, type done").WithDefaultValue("").Show()
		if name == "done" {
			if len(names) >= 2 {
				break
			}
			pterm.Warning.Println("War needs at least 2 players")
			continue
		}
		if name == "" {
			continue
		}
		names = append(names, name)
		pterm.Info.Printfln("%d player(s) so far", len(names))
	}

	policies := []string{
		string(war.LeftoverStock),
		string(war.LeftoverDiscard),
		string(war.LeftoverRoundRobin),
	}
	chosen, _ := pterm.DefaultInteractiveSelect.WithDefaultText("What happens to the cards an uneven deal leaves over?").WithOptions(policies).Show()

	seed := time.Now().UnixNano()
	seedInput, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Shuffle seed (blank for current time)").WithDefaultValue("").Show()
	if seedInput != "" {
		parsed, err := strconv.ParseInt(seedInput, 10, 64)
		if err != nil {
			logger.Error("invalid seed", "input", seedInput, "error", err.Error())
			os.Exit(1)
		}
		seed = parsed
	}

	spinner, _ := pterm.DefaultSpinner.Start("Shuffling and dealing ...")
	match, err := war.NewMatch(names, seed, war.LeftoverPolicy(chosen))
	if err != nil {
		spinner.Fail()
		logger.Error("could not set up the match", "error", err.Error())
		os.Exit(1)
	}
	spinner.Success()
	logger.Info("match ready", "id", match.ID, "players", len(names), "seed", seed)
	printStandings(match)

	step, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Step through rounds one by one?").WithDefaultValue(true).Show()

	for !match.Done() && match.Rounds() < maxRounds {
		if step {
			cont, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Play next round?").WithDefaultValue(true).Show()
			if !cont {
				break
			}
		}
		record, err := match.PlayRound()
		if err != nil {
			logger.Error("round aborted", "round", match.Rounds()+1, "error", err.Error())
			os.Exit(1)
		}
		printRound(record)
		for _, name := range record.Eliminated {
			logger.Info("player eliminated", "player", name, "round", record.Round)
		}
		if step {
			printStandings(match)
		}
	}

	result := match.Result()
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pterm.Println(pbox.WithTitle(pterm.LightGreen("|GAME OVER|")).WithTitleTopCenter().Sprintf(
		"%s holds the field after %d rounds", pterm.LightCyan(result.Winner), result.Rounds))
}

func printRound(record war.RoundRecord) {
	line := pterm.Sprintf("Round %d: %s wins %d cards with a %s",
		record.Round, pterm.LightCyan(record.Winner), record.PotSize, record.WinningRank)
	if record.Wars > 0 {
		line += pterm.LightYellow(pterm.Sprintf("  (war x%d)", record.Wars))
	}
	pterm.Println(line)
}

func printStandings(match *war.Match) {
	data := pterm.TableData{{"Player", "Cards"}}
	for _, p := range match.Game().Players() {
		data = append(data, []string{p.Name, strconv.Itoa(p.Deck.Size())})
	}
	if !match.Stock().IsEmpty() {
		data = append(data, []string{"(stock)", strconv.Itoa(match.Stock().Size())})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
