// Package services defines shared utilities consumed by the show processor
// and its external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp show names, episode categories, and
//     correlation identifiers for logging.
//   - Structured error markers plus the Wrap helper and Classify, which
//     translate failures into consistent per-show outcomes.
//
// Integrations live in subpackages (see animefillerlist).
package services
