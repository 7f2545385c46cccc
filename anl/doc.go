// Package anl implements the Abstract Network Layer: a formal model of
// slotted wireless broadcast communication with carrier sensing,
// collisions, and overlapping transmissions.
//
// The package exposes the network setup and topology types, the trait and
// trait-mapping types used to represent per-slot intentions and outcome
// actions, the sender-set fixed point, and the transition function ψ that
// combines them into the set of possible successor network states.
package anl
