// Package formatting renders outcome reports and deployment listings for
// the CLI in table, json or yaml form. Table output is the human default;
// json and yaml are stable shapes for the calling orchestrator.
package formatting
