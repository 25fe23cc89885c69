package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	CommitHashEnv     = "COMMIT_HASH"
	UnknownCommitHash = "unknown"
)

// DeploymentInfo is captured once before the listener starts and never changes afterwards.
type DeploymentInfo struct {
	CommitHash string
}

func (di DeploymentInfo) Commit() string {
	return di.CommitHash
}

// ReadDeploymentInfo falls back to UnknownCommitHash only when COMMIT_HASH is unset,
// an empty value is kept as is.
func ReadDeploymentInfo() DeploymentInfo {
	commit, ok := os.LookupEnv(CommitHashEnv)
	if !ok {
		commit = UnknownCommitHash
	}
	return DeploymentInfo{CommitHash: commit}
}

// LoadDotenv exports the variables of the dotenv file at path into the process environment.
// Variables which are already set are not overridden. A missing file is skipped.
func LoadDotenv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
