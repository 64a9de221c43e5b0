// Package slot holds the two per-node storage tables the walkers and
// backtrackers share: a two-rows-wide RowSlotTable for the streaming
// forward walker, and a sorted ResidentSlotTable for the handful of
// long-range nodes a graph shape exposes. Both store a Slot: an
// optional best back-edge plus its accumulated weight.
package slot
