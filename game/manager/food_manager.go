package manager

import (
	"flower-snake/game/entity"
	"flower-snake/game/types"

	"golang.org/x/exp/rand"
)

// maxRejections bounds rejection sampling before falling back to
// drawing from the enumerated free cells
const maxRejections = 64

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// GenerateFood picks a cell uniformly among those not covered by the snake
// and a flower kind uniformly from types.Flowers. It returns false when the
// snake covers the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Food, bool) {
	if snake.Len() >= fm.grid.Cells() {
		return types.Food{}, false
	}

	pos, ok := fm.sample(snake)
	if !ok {
		pos, ok = fm.pickFree(snake)
		if !ok {
			return types.Food{}, false
		}
	}

	return types.Food{
		Pos:    pos,
		Flower: types.Flowers[fm.rng.Intn(len(types.Flowers))],
	}, true
}

func (fm *FoodManager) sample(snake *entity.Snake) (types.Point, bool) {
	for i := 0; i < maxRejections; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !snake.Occupies(food) {
			return food, true
		}
	}
	return types.Point{}, false
}

func (fm *FoodManager) pickFree(snake *entity.Snake) (types.Point, bool) {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, part := range snake.Body {
		occupied[part] = struct{}{}
	}

	free := make([]types.Point, 0, fm.grid.Cells()-len(occupied))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
