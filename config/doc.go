// Package config loads netknit run configuration with the layering
// defaults → YAML file → environment → validation, and assembles a ready
// selection policy plus its solution sink from the result.
//
// Priority (lowest to highest): Default(), the optional YAML file handed to
// Load, then NETKNIT_* environment variables. A missing file is not an
// error; a present-but-broken file or a failed validation is.
//
// Environment keys:
//
//	NETKNIT_POLICY            "exhaustive" | "stochastic"
//	NETKNIT_SEED              uint64 PCG seed (stochastic)
//	NETKNIT_WEIGHT_KEY        section attribute holding weights (stochastic)
//	NETKNIT_SOLUTIONS         sqlite path; empty records in memory
//	NETKNIT_MAX_SOLUTIONS     int, 0 = unlimited
//	NETKNIT_ALLOW_SELF        bool
//	NETKNIT_MAX_PAIR_LINKS    int, 0 = unlimited
//	NETKNIT_MAX_NETWORK_SIZE  int, 0 = unlimited
//	NETKNIT_MAX_DEPTH         int, 0 = unlimited
//
// Malformed environment values are skipped, keeping the previous layer's
// value; validation after layering still catches impossible combinations.
package config
