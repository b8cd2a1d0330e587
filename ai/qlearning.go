package ai

import (
	"math"
	"sync"

	"flower-snake/game"
	"flower-snake/game/types"

	"golang.org/x/exp/rand"
)

// Rewards for a single transition
const (
	RewardFood    = 1.0
	RewardDeath   = -1.0
	RewardCloser  = 0.5
	RewardFarther = -0.3
)

// stateKey is the part of State the table is indexed by
type stateKey struct {
	foodDir [2]int
	danger  [4]bool
	heading types.Direction
}

func keyOf(s State) stateKey {
	return stateKey{foodDir: s.FoodDir, danger: s.Danger, heading: s.Heading}
}

// QTable maps a state to one value per entry of types.Directions
type QTable map[stateKey]*[4]float64

// Agent is a tabular Q-learning player. Its methods are safe for
// concurrent use; the exported tuning fields are read-only once the agent
// is shared.
type Agent struct {
	mu  sync.RWMutex
	rng *rand.Rand

	table       QTable
	epsilon     float64
	totalReward float64
	gamesPlayed int

	LearningRate float64
	Discount     float64
	MinEpsilon   float64
	EpsilonDecay float64 // Multiplied into epsilon at the end of each episode
}

// NewAgent creates an agent with an empty table
func NewAgent(rng *rand.Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Agent{
		rng:          rng,
		table:        make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		epsilon:      0.1,
		MinEpsilon:   0.01,
		EpsilonDecay: 0.995,
	}
}

// Act picks a direction for s. The reverse of the current heading is never
// proposed.
func (a *Agent) Act(s State) types.Direction {
	candidates := legalMoves(s.Heading)

	a.mu.Lock()
	explore := a.rng.Float64() < a.epsilon
	pick := 0
	if explore {
		pick = a.rng.Intn(len(candidates))
	}
	a.mu.Unlock()

	if explore {
		return candidates[pick]
	}
	return a.best(s, candidates)
}

func (a *Agent) best(s State, candidates []types.Direction) types.Direction {
	a.mu.RLock()
	values := a.table[keyOf(s)]
	a.mu.RUnlock()

	best := candidates[0]
	bestValue := math.Inf(-1)
	for _, d := range candidates {
		v := 0.0
		if values != nil {
			v = values[directionIndex(d)]
		}
		// Unexplored states fall back to the first safe move
		if v > bestValue || (v == bestValue && s.DangerAt(best) && !s.DangerAt(d)) {
			best, bestValue = d, v
		}
	}
	return best
}

// legalMoves returns the three directions other than the reverse of heading
func legalMoves(heading types.Direction) []types.Direction {
	out := make([]types.Direction, 0, len(types.Directions))
	for _, d := range types.Directions {
		if heading.Valid() && d == heading.Opposite() {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Reward scores the transition from prev to next
func Reward(prev, next State, res game.StepResult) float64 {
	switch {
	case res.Collision != types.NoCollision:
		return RewardDeath
	case res.Ate:
		return RewardFood
	case next.FoodDistance < prev.FoodDistance:
		return RewardCloser
	case next.FoodDistance > prev.FoodDistance:
		return RewardFarther
	default:
		return 0
	}
}

// Learn applies one Q-learning update for taking action in prev and
// landing in next. It returns the reward.
func (a *Agent) Learn(prev State, action types.Direction, next State, res game.StepResult) float64 {
	i := directionIndex(action)
	if i < 0 {
		return 0
	}
	reward := Reward(prev, next, res)

	a.mu.Lock()
	defer a.mu.Unlock()

	values := a.row(keyOf(prev))
	future := 0.0
	if !res.Snapshot.Over {
		nextValues := a.row(keyOf(next))
		future = nextValues[0]
		for _, v := range nextValues[1:] {
			future = math.Max(future, v)
		}
	}
	values[i] += a.LearningRate * (reward + a.Discount*future - values[i])
	a.totalReward += reward
	return reward
}

// row returns the values for k, creating a zero row. Callers hold mu.
func (a *Agent) row(k stateKey) *[4]float64 {
	values, ok := a.table[k]
	if !ok {
		values = &[4]float64{}
		a.table[k] = values
	}
	return values
}

// EndEpisode counts a finished game and decays exploration
func (a *Agent) EndEpisode() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gamesPlayed++
	a.epsilon = math.Max(a.MinEpsilon, a.epsilon*a.EpsilonDecay)
}

// Epsilon returns the current exploration rate
func (a *Agent) Epsilon() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.epsilon
}

// SetEpsilon overrides the exploration rate. 0 plays greedily, 1 at random.
func (a *Agent) SetEpsilon(epsilon float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.epsilon = epsilon
}

// TotalReward sums every reward handed out by Learn
func (a *Agent) TotalReward() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.totalReward
}

func (a *Agent) GamesPlayed() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.gamesPlayed
}

// Value returns the learned value of taking d in s
func (a *Agent) Value(s State, d types.Direction) float64 {
	i := directionIndex(d)
	if i < 0 {
		return 0
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	if values, ok := a.table[keyOf(s)]; ok {
		return values[i]
	}
	return 0
}

// States returns the number of states visited so far
func (a *Agent) States() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.table)
}
