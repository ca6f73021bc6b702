/*
Package search implements the exhaustive train search.

The engine walks every legal sequence of tile placements depth-first,
starting from an open end, and keeps the first train that strictly improves
the objective. Tiles are tracked by index in a used-mask, so each branch
shares the pool without copying it. The orientation of the winning tiles is
resolved in a separate pass once the search is over.
*/
package search
