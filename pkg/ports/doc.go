/*
Package ports defines the driven ports (interfaces) of the solver.

These interfaces decouple the solver from external implementations, allowing
it to work with various puzzle sources and result caches.

# Key Interfaces

  - PuzzleLoader: Responsible for loading Puzzle definitions (e.g., from Loam or Memory).
  - ResultStore: Responsible for caching solved Results by puzzle key.
  - Locker: Serializes searches of the same puzzle across workers or processes.
*/
package ports
