package services

// Services defined in this package:
// - StudentService: resident registry and profile management
// - MenuService: meal menu publishing and lookup
// - FeedbackService: meal ratings and satisfaction summaries
// - ComplaintService: complaint ticket workflow and triage
// - DashboardService: aggregate counters for the admin landing page
