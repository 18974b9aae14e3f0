// Package trace holds the in-memory form of a bee foraging position log.
//
// A log is a flat table of records, one per flower or bee per simulation
// timestep, as written by the simulation's positions.csv export:
//
//	timestep,type,id,x,y,state,nectar
//	0,flower,0,120.50,88.10,0,5.00
//	0,bee,0,400.00,400.00,1,0
//
// The package provides:
//
//   - [Record], [Kind], [BeeState]: typed rows
//   - [Read] and [Load]: CSV decoding with header-based column lookup
//   - [Timesteps]: the sorted, duplicate-free frame order of a table
//   - [Index]: records grouped by timestep once, for O(1) frame lookup
//
// Tables are read-only once loaded.
package trace
