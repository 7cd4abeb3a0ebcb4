package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// shortHashLen is how much of the commit hash is stamped on history entries.
const shortHashLen = 12

// GitInfoAdapter implements domain.RevisionSource using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// Revision returns the abbreviated HEAD commit of the repository containing
// dir. Parent directories are searched for the .git directory.
func (g *GitInfoAdapter) Revision(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String()[:shortHashLen], nil
}
