// Package quizgrab scrapes Quiz Maker (ays) quizzes from WordPress sites
// into a normalized, typed question model. It discovers quiz pages from a
// category listing or sitemap, renders each page in a headless browser,
// reconciles the visible DOM markup with the base64-encoded correctness
// payload embedded alongside it, and persists the result as JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package quizgrab
