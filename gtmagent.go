// Package gtmagent provides a local, CLI-based go-to-market research assistant.
// It searches the web across several providers, scrapes and extracts readable
// content politely, keeps what it finds in a local full-text index, and hands
// the gathered material to a language model to draft research summaries and
// branded collateral.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package gtmagent

// DefaultUserAgent identifies the agent to the sites and APIs it talks to.
const DefaultUserAgent = "eand-gtm-agent/0.1 (+https://eand.com)"
