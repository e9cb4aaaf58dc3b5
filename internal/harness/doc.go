// Package harness runs keystroke scenarios against the calculator engine.
//
// A scenario presses keys, checks the display after each step and makes
// assertions about the resulting history. Scenarios double as executable
// documentation of calculator behaviour.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	mode: programming        # optional, default standard
//	angle: deg               # optional, default deg
//	base: 16                 # optional, default 10
//	fail_saves: false        # optional, make every history save fail
//	setup:
//	  - keys: "5 ms"
//	flow:
//	  - keys: "5 + 3 +"
//	    expect:
//	      primary: "8"
//	      secondary: "8 +"
//	  - keys: "1 / 0 ="
//	    expect:
//	      primary: "Error"
//	      error: DIVISION_BY_ZERO
//	assertions:
//	  - type: history_contains
//	    expression: "5 + 3"
//	    result: "8"
//	  - type: final_state
//	    table: history
//	    where: { expression: "5 + 3" }
//	    expect: { result: "8", mode: "standard" }
//
// # Assertion Types
//
//   - history_contains: A history record matches expression and/or result
//   - history_order: Expressions appear in history in the given order (oldest first)
//   - history_count: History holds exactly N records
//   - display: The final display matches primary/secondary/phase
//   - final_state: Queries a store table and verifies expected values
//
// # Deterministic Testing
//
// Every scenario runs on a fresh engine with a deterministic wall clock
// (testutil.DeterministicClock), sequential record IDs
// (testutil.SequentialIDs) and an in-memory SQLite store, so traces are
// identical across runs and can be compared against golden files.
package harness
