// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The engine services (classifier, extractor, field resolver,
// renderer) are stateless and side-effect-free per call; only the
// clause service mutates persistent state, and it serialises its
// composite writes.
package services
