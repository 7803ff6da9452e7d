package game

import (
	"fmt"
	"math/rand"
)

type policySet struct {
	Uniform  Policy
	SevenBag Policy
}

// Policies represents the set of randomizer policies that can be used.
var Policies = policySet{
	Uniform:  newPolicy("uniform"),
	SevenBag: newPolicy("sevenbag"),
}

// =============================================================================

// Set of known policies.
var policies = make(map[string]Policy)

// Policy represents a piece randomizer policy in the system.
type Policy struct {
	name string
}

func newPolicy(policy string) Policy {
	p := Policy{policy}
	policies[policy] = p
	return p
}

// IsZero checks if the policy is set to its zero value.
func (p Policy) IsZero() bool {
	return p.name == ""
}

// String returns the name of the policy.
func (p Policy) String() string {
	return p.name
}

// ParsePolicy parses the string value and returns a policy if one exists.
func ParsePolicy(value string) (Policy, error) {
	policy, exists := policies[value]
	if !exists {
		return Policy{}, fmt.Errorf("invalid randomizer policy %q", value)
	}

	return policy, nil
}

// =============================================================================

// Bag produces the sequence of upcoming shapes. The uniform policy picks every
// shape independently at random. The sevenbag policy deals a shuffled set of
// all seven shapes before reshuffling, so no shape can repeat more than twice
// in a row or go missing for long. Two bags with the same policy and seed
// produce identical sequences.
type Bag struct {
	rng    *rand.Rand
	policy Policy
	queue  []Shape
}

// NewBag constructs a bag using the specified policy, seeded for a
// reproducible sequence.
func NewBag(policy Policy, seed int64) *Bag {
	if policy.IsZero() {
		policy = Policies.Uniform
	}

	return &Bag{
		rng:    rand.New(rand.NewSource(seed)),
		policy: policy,
	}
}

// Next removes and returns the next shape in the sequence.
func (b *Bag) Next() Shape {
	b.extend(1)

	shape := b.queue[0]
	b.queue = b.queue[1:]

	return shape
}

// Peek returns the next n shapes without consuming them.
func (b *Bag) Peek(n int) []Shape {
	b.extend(n)

	shapes := make([]Shape, n)
	copy(shapes, b.queue[:n])

	return shapes
}

// extend grows the queue until at least n shapes are available.
func (b *Bag) extend(n int) {
	for len(b.queue) < n {
		switch b.policy {
		case Policies.SevenBag:
			set := AllShapes()
			b.rng.Shuffle(len(set), func(i, j int) {
				set[i], set[j] = set[j], set[i]
			})
			b.queue = append(b.queue, set[:]...)

		default:
			set := AllShapes()
			b.queue = append(b.queue, set[b.rng.Intn(len(set))])
		}
	}
}
