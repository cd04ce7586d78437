package projectsetup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildArgvDefaultVector(t *testing.T) {
	argv := buildArgv(nil, nil)
	assert.Equal(t, defaultGoals, argv)
}

func TestBuildArgvRemovesSkippedGoals(t *testing.T) {
	argv := buildArgv([]string{"-DskipTests", "clean"}, nil)
	assert.NotContains(t, argv, "-DskipTests")
	assert.NotContains(t, argv, "clean")
	assert.Contains(t, argv, "package")
}

func TestBuildArgvAppendsNewExtraGoal(t *testing.T) {
	argv := buildArgv(nil, []string{"verify"})
	assert.Contains(t, argv, "verify")
	assert.Len(t, argv, len(defaultGoals)+1)
}

func TestBuildArgvKeyValueReplacesExistingKey(t *testing.T) {
	argv := buildArgv(nil, []string{"-DskipTests=false"})
	assert.Contains(t, argv, "-DskipTests=false")
	assert.NotContains(t, argv, "-DskipTests")
}

func TestBuildArgvDoesNotDuplicateExactGoal(t *testing.T) {
	argv := buildArgv(nil, []string{"package"})
	count := 0
	for _, a := range argv {
		if a == "package" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
