package domain

// CommandOpenGitView reveals the source-control view for a repository
const CommandOpenGitView = "gitnag.openGitView"
