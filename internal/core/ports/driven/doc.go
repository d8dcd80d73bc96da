// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the engine to function:
//
//   - Annotator: Tags text spans with semantic categories (NER)
//   - TemplateStore: Locates and saves document template sources
//   - ClauseStore: Clause persistence
//   - MetadataStore: Favourites/tags/recents persistence
//   - VersionStore: Timestamped clause/template snapshots
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - Exporter: Writes assembled documents to an output format.
//     Binary formats (PDF, DOCX) are external collaborators; only a
//     plain-text exporter ships in this repository.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
