package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"courtside/clients/balldontlie"
	"courtside/internal/auth"
	"courtside/internal/browse"
	"courtside/internal/config"
	"courtside/internal/models"
	"courtside/internal/roster"
	"courtside/internal/store"
	"courtside/internal/teams"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load(getEnv("COURTSIDE_CONFIG", "courtside.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	kv, err := store.OpenBadger(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer kv.Close()

	repo, err := teams.NewRepository(kv)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load teams")
	}

	directory := balldontlie.NewClientWithBaseURL(cfg.API.BaseURL, cfg.API.Key)

	app := &cli{
		registry: teams.NewApp(repo),
		session:  auth.NewSession(kv),
		browser:  browse.NewBrowser(directory, clockwork.NewRealClock(), cfg.Debounce(), cfg.Browse.PerPage),
		dir:      directory,
	}

	log.Info().
		Str("store", cfg.Store.Path).
		Str("api", cfg.API.BaseURL).
		Msg("starting courtside")

	app.browser.Refresh()
	app.run()
}

type cli struct {
	registry *teams.App
	session  *auth.Session
	browser  *browse.Browser
	dir      *balldontlie.Client
}

func (c *cli) run() {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(`courtside roster manager - type "help" for commands`)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			c.help()
		case "login":
			c.login(args)
		case "logout":
			c.report(c.session.Logout())
		case "whoami":
			c.whoami()
		case "players":
			c.players()
		case "search":
			c.browser.SetSearch(strings.Join(args, " "))
		case "clear":
			c.browser.SetSearch("")
		case "next":
			c.browser.NextPage()
			c.players()
		case "prev":
			c.browser.PrevPage()
			c.players()
		case "teams":
			c.listTeams()
		case "create":
			c.createTeam(args)
		case "rename":
			c.renameTeam(args)
		case "setcount":
			c.setCount(args)
		case "delete":
			c.deleteTeam(args)
		case "pick":
			c.pick(args)
		case "eligible":
			c.eligible(args)
		case "franchises":
			c.franchises()
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

func (c *cli) help() {
	fmt.Println(`commands:
  login <name>                    log in
  logout | whoami
  players | search <q> | clear    browse the directory
  next | prev                     page through results
  teams                           list your teams
  create <name> <count> <region> <country>
  rename <team> <new-name>
  setcount <team> <count>
  delete <team>
  pick <team> <player-id>         toggle a player on a roster
  eligible [team]                 players free to assign
  franchises                      NBA franchise list
  quit`)
}

func (c *cli) login(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: login <name>")
		return
	}
	c.report(c.session.Login(args[0]))
}

func (c *cli) whoami() {
	user, found, err := c.session.CurrentUser()
	if err != nil {
		c.report(err)
		return
	}
	if !found {
		fmt.Println("not logged in")
		return
	}
	fmt.Println(user)
}

func (c *cli) players() {
	if c.browser.Failed() {
		fmt.Println("directory unavailable, no players to show")
		return
	}
	for _, p := range c.browser.Page() {
		fmt.Printf("  %6d  %s\n", p.ID, p.FullName())
	}
	fmt.Printf("page %d of %d\n", c.browser.CurrentPage(), c.browser.TotalPages())
}

func (c *cli) listTeams() {
	all := c.registry.ListTeams()
	if len(all) == 0 {
		fmt.Println("no teams yet")
		return
	}
	for _, t := range all {
		fmt.Printf("  %s  %s - %d/%d players, %s, %s\n",
			t.ID, t.Name, len(t.Players), t.PlayerCount, t.Region, t.Country)
	}
}

func (c *cli) createTeam(args []string) {
	if len(args) != 4 {
		fmt.Println("usage: create <name> <count> <region> <country>")
		return
	}

	count, err := strconv.Atoi(args[1])
	if err != nil || count < 1 {
		fmt.Println("player count must be a number >= 1")
		return
	}
	if args[0] == "" || args[2] == "" || args[3] == "" {
		fmt.Println("name, region and country are required")
		return
	}

	team, err := c.registry.CreateTeam(teams.CreateTeamRequest{
		Name:        args[0],
		PlayerCount: count,
		Region:      args[2],
		Country:     args[3],
	})
	if err != nil {
		c.report(err)
		return
	}
	fmt.Printf("created team %s (%s)\n", team.Name, team.ID)
}

func (c *cli) renameTeam(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: rename <team> <new-name>")
		return
	}
	team, ok := c.resolveTeam(args[0])
	if !ok {
		return
	}

	_, err := c.registry.UpdateTeam(team.ID, teams.UpdateTeamRequest{Name: &args[1]})
	c.report(err)
}

func (c *cli) setCount(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: setcount <team> <count>")
		return
	}
	team, ok := c.resolveTeam(args[0])
	if !ok {
		return
	}
	count, err := strconv.Atoi(args[1])
	if err != nil || count < 1 {
		fmt.Println("player count must be a number >= 1")
		return
	}

	// Shrinking the declared count drops picks past the new ceiling.
	req := teams.UpdateTeamRequest{PlayerCount: &count}
	if len(team.Players) > count {
		kept := clampRoster(team.Players, count)
		req.Players = &kept
	}

	_, err = c.registry.UpdateTeam(team.ID, req)
	c.report(err)
}

func (c *cli) deleteTeam(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: delete <team>")
		return
	}
	team, ok := c.resolveTeam(args[0])
	if !ok {
		return
	}
	c.report(c.registry.DeleteTeam(team.ID))
}

func (c *cli) pick(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: pick <team> <player-id>")
		return
	}
	team, ok := c.resolveTeam(args[0])
	if !ok {
		return
	}
	playerID, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("player id must be a number")
		return
	}

	eligible := roster.EligiblePlayers(c.browser.Players(), c.registry.ListTeams(), &team.ID)
	byID := make(map[int]models.Player, len(eligible))
	for _, p := range eligible {
		byID[p.ID] = p
	}
	if _, ok := byID[playerID]; !ok && !team.HasPlayer(playerID) {
		fmt.Println("player is not eligible for this team")
		return
	}

	selection := make([]int, len(team.Players))
	for i, p := range team.Players {
		selection[i] = p.ID
	}

	toggled := roster.ToggleSelection(selection, playerID, team.PlayerCount)
	if len(toggled) == len(selection) && len(selection) >= team.PlayerCount && !team.HasPlayer(playerID) {
		fmt.Printf("roster is full (%d players)\n", team.PlayerCount)
		return
	}

	picked := make([]models.Player, 0, len(toggled))
	for _, id := range toggled {
		if p, ok := byID[id]; ok {
			picked = append(picked, p)
			continue
		}
		for _, p := range team.Players {
			if p.ID == id {
				picked = append(picked, p)
				break
			}
		}
	}

	_, err = c.registry.UpdateTeam(team.ID, teams.UpdateTeamRequest{Players: &picked})
	c.report(err)
}

func (c *cli) eligible(args []string) {
	var editing *uuid.UUID
	if len(args) == 1 {
		team, ok := c.resolveTeam(args[0])
		if !ok {
			return
		}
		editing = &team.ID
	}

	for _, p := range roster.EligiblePlayers(c.browser.Players(), c.registry.ListTeams(), editing) {
		fmt.Printf("  %6d  %s\n", p.ID, p.FullName())
	}
}

func (c *cli) franchises() {
	franchises, err := c.dir.GetTeams()
	if err != nil {
		c.report(err)
		return
	}
	for _, f := range franchises {
		fmt.Printf("  %s (%s, %s)\n", f.FullName, f.Conference, f.Division)
	}
}

// resolveTeam accepts a team id or an exact team name.
func (c *cli) resolveTeam(arg string) (*models.Team, bool) {
	if id, err := uuid.Parse(arg); err == nil {
		team, err := c.registry.GetTeam(id)
		if err != nil {
			c.report(err)
			return nil, false
		}
		return team, true
	}

	for _, t := range c.registry.ListTeams() {
		if t.Name == arg {
			team := t
			return &team, true
		}
	}
	fmt.Printf("no team named %q\n", arg)
	return nil, false
}

func clampRoster(players []models.Player, maxCount int) []models.Player {
	ids := make([]int, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	kept := roster.ClampSelection(ids, maxCount)

	out := make([]models.Player, len(kept))
	copy(out, players[:len(kept)])
	return out
}

func (c *cli) report(err error) {
	if err != nil {
		fmt.Println(err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
