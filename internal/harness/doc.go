// Package harness runs learning experiment scenarios end to end.
//
// A scenario is a YAML file naming a CUE game definition, an observed
// player, an update mode, the candidate priority orders, and a fixed round
// list of observed profiles. Running a scenario replays the rounds through
// a learning session and records the belief trajectory; assertions then
// check the true game's equilibria and the final belief, and golden files
// pin the full trajectory byte for byte.
//
// Everything a scenario touches is deterministic, so golden trajectories
// are stable across runs and platforms.
package harness
