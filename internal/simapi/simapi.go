// Package simapi serves the battle simulator and content catalog over HTTP.
package simapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jrpg-battle/internal/catalog"
	"jrpg-battle/internal/dice"
	"jrpg-battle/internal/game"
	"jrpg-battle/internal/party"
)

// Request limits.
const (
	MaxBattles    = 1000
	MaxEncounters = 100
	MaxLevel      = game.MaxSimLevel
)

// API holds the shared, read-only game content.
type API struct {
	content *game.Content
}

// New returns the API over content.
func New(content *game.Content) *API {
	return &API{content: content}
}

// Router builds the gin engine with all routes mounted.
func (a *API) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		cat := api.Group("/catalog")
		{
			cat.GET("/spells", a.listSpells)
			cat.GET("/items", a.listItems)
		}
		api.POST("/encounters", a.rollEncounters)
		api.POST("/simulations", a.simulate)
	}
	return r
}

type spellJSON struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	School  string `json:"school"`
	Element string `json:"element"`
	MP      int    `json:"mp"`
	Power   int    `json:"power"`
	AoE     bool   `json:"aoe"`
	Target  string `json:"target"`
	Status  string `json:"status,omitempty"`
}

func (a *API) listSpells(c *gin.Context) {
	var out []spellJSON
	for _, s := range a.content.Catalog.Spells() {
		js := spellJSON{
			ID:      s.ID,
			Name:    s.Name,
			School:  s.School.String(),
			Element: s.Element.String(),
			MP:      s.MP,
			Power:   s.Power,
			AoE:     s.AoE,
			Target:  "enemy",
		}
		if s.Target == catalog.TargetAlly {
			js.Target = "ally"
		}
		if s.Status != nil {
			js.Status = s.Status.ID.String()
		}
		out = append(out, js)
	}
	c.JSON(http.StatusOK, gin.H{"spells": out})
}

type itemJSON struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Price   int    `json:"price"`
	Quality string `json:"quality"`
	Slot    string `json:"slot,omitempty"`
	Teaches string `json:"teaches,omitempty"`
}

func (a *API) listItems(c *gin.Context) {
	var out []itemJSON
	for _, it := range a.content.Catalog.Items() {
		js := itemJSON{
			ID:      it.ID,
			Name:    it.Name,
			Kind:    it.Kind.String(),
			Price:   it.Price,
			Quality: it.Quality.String(),
			Teaches: it.Teaches,
		}
		if it.Kind == catalog.Equipment {
			js.Slot = it.Slot.String()
		}
		out = append(out, js)
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

type encounterRequest struct {
	Seed        int64         `json:"seed"`
	Count       int           `json:"count"`
	LeaderClass party.Class   `json:"leader_class"`
	Level       int           `json:"level"`
	Companions  []party.Class `json:"companions"`
}

type enemyJSON struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Element string `json:"element"`
	Level   int    `json:"level"`
	HP      int    `json:"hp"`
	Attack  int    `json:"attack"`
	Agility int    `json:"agility"`
	XP      int    `json:"xp"`
}

func (a *API) rollEncounters(c *gin.Context) {
	var req encounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Count <= 0 {
		req.Count = 1
	}
	if req.Count > MaxEncounters {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("count above %d", MaxEncounters)})
		return
	}
	if req.Level > MaxLevel {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("level above %d", MaxLevel)})
		return
	}
	p, err := game.BuildParty(a.content, req.LeaderClass, req.Companions, req.Level)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rng := dice.New(req.Seed)
	groups := make([][]enemyJSON, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		var group []enemyJSON
		for _, e := range game.GenerateEncounter(rng, p) {
			group = append(group, enemyJSON{
				Name:    e.Name,
				Species: e.Species.String(),
				Element: e.Element.String(),
				Level:   e.Level,
				HP:      e.MaxHP(),
				Attack:  e.Attack,
				Agility: e.Agility,
				XP:      e.XP,
			})
		}
		groups = append(groups, group)
	}
	c.JSON(http.StatusOK, gin.H{"seed": req.Seed, "encounters": groups})
}

func (a *API) simulate(c *gin.Context) {
	var opts game.SimOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if opts.Battles > MaxBattles || opts.Level > MaxLevel {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d battles at level %d", MaxBattles, MaxLevel)})
		return
	}
	rep, err := game.Simulate(a.content, opts)
	switch {
	case errors.Is(err, game.ErrBadSimOptions):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rep)
}
