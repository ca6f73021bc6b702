/*
Package domain contains the core model of the Mexican Train solver.

It defines the physical pieces and the results of a search. This package is
kept pure and free of external dependencies like I/O or persistence, so every
adapter (CLI, HTTP, MCP, stores) speaks the same vocabulary.

# Key Entities

  - Tile: an unordered pair of face values from a double-12 set.
  - Train: an ordered, connected chain of tiles starting from an open end.
  - Objective: the quantity a search maximizes (total pips or tile count).
  - Puzzle: a starting value plus the pool of tiles available to the search.
  - Result: the best train found for a puzzle and how the search went.
*/
package domain
