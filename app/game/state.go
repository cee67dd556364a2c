// Package game backs the toy cellular-automaton demo page.
package game

import (
	"math/rand"
	"net/http"
	"strconv"

	"whosmudassir/shop-api/internal"
	"whosmudassir/shop-api/pkg/life"

	"github.com/gin-gonic/gin"
)

// Demo pages only ever animate a bounded number of generations.
const maxGenerations = 1000

// State seeds a grid and advances it the requested number of
// generations.
//
// Query params: seed = empty|random|glider|name, name = letters for
// seed=name, generations = how many steps to run.
func State(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	gens, err := strconv.Atoi(c.DefaultQuery("generations", "0"))
	if err != nil || gens < 0 || gens > maxGenerations {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid generations parameter",
			"requestID": requestID,
		})
		return
	}

	var grid life.Grid

	switch seed := c.DefaultQuery("seed", "glider"); seed {
	case "empty":
		grid = life.Empty()
	case "random":
		grid = life.Random(0.3, rand.New(rand.NewSource(rand.Int63())))
	case "glider":
		grid = life.Glider()
	case "name":
		grid = life.Name(c.DefaultQuery("name", "John"))
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid seed parameter",
			"requestID": requestID,
		})
		return
	}

	grid = grid.Run(gens)

	c.JSON(http.StatusOK, gin.H{
		"grid":       grid,
		"generation": gens,
		"alive":      grid.Alive(),
	})
}
