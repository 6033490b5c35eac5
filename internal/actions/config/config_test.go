package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/stockline/internal/dispatchers"
	"github.com/footprint-tools/stockline/internal/usage"
)

func noFlags() *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags([]string{})
}

func runLocked(fn func() error) error { return fn() }

// =========== GET TESTS ===========

func TestGet_Success(t *testing.T) {
	var captured string
	deps := Deps{
		Get: func(key string) (string, bool) {
			if key == "log_level" {
				return "debug", true
			}
			return "", false
		},
		Println: func(a ...any) (int, error) {
			captured = fmt.Sprint(a...)
			return 0, nil
		},
	}

	require.NoError(t, get([]string{"log_level"}, noFlags(), deps))
	require.Equal(t, "debug", captured)
}

func TestGet_MissingKey(t *testing.T) {
	err := get([]string{}, noFlags(), Deps{})

	require.True(t, usage.IsKind(err, usage.ErrMissingArgument))
}

func TestGet_KeyNotFound(t *testing.T) {
	deps := Deps{
		Get: func(string) (string, bool) { return "", false },
	}

	err := get([]string{"nonexistent"}, noFlags(), deps)
	require.True(t, usage.IsKind(err, usage.ErrInvalidConfigKey))
	require.Contains(t, err.Error(), "nonexistent")
}

// =========== SET TESTS ===========

func TestSet_AddNew(t *testing.T) {
	var captured string
	var written []string
	deps := Deps{
		WithLock:  runLocked,
		ReadLines: func() ([]string, error) { return []string{}, nil },
		Set: func(lines []string, key, value string) ([]string, bool) {
			return append(lines, key+"="+value), false
		},
		WriteLines: func(lines []string) error {
			written = lines
			return nil
		},
		Printf: func(format string, a ...any) (int, error) {
			captured = fmt.Sprintf(format, a...)
			return 0, nil
		},
	}

	require.NoError(t, set([]string{"color", "false"}, noFlags(), deps))
	require.Equal(t, "added color=false\n", captured)
	require.Equal(t, []string{"color=false"}, written)
}

func TestSet_UpdateExisting(t *testing.T) {
	var captured string
	deps := Deps{
		WithLock:  runLocked,
		ReadLines: func() ([]string, error) { return []string{"color=true"}, nil },
		Set: func(_ []string, key, value string) ([]string, bool) {
			return []string{key + "=" + value}, true
		},
		WriteLines: func([]string) error { return nil },
		Printf: func(format string, a ...any) (int, error) {
			captured = fmt.Sprintf(format, a...)
			return 0, nil
		},
	}

	require.NoError(t, set([]string{"color", "false"}, noFlags(), deps))
	require.Contains(t, captured, "updated")
}

func TestSet_MissingArguments(t *testing.T) {
	err := set([]string{}, noFlags(), Deps{})
	require.True(t, usage.IsKind(err, usage.ErrMissingArgument))

	err = set([]string{"color"}, noFlags(), Deps{})
	require.True(t, usage.IsKind(err, usage.ErrMissingArgument))
	require.Contains(t, err.Error(), "value")
}

func TestSet_UnknownKey(t *testing.T) {
	err := set([]string{"theme", "dark"}, noFlags(), Deps{})

	require.True(t, usage.IsKind(err, usage.ErrInvalidConfigKey))
}

func TestSet_ReadLinesError(t *testing.T) {
	deps := Deps{
		WithLock:  runLocked,
		ReadLines: func() ([]string, error) { return nil, errors.New("cannot read config") },
	}

	err := set([]string{"color", "false"}, noFlags(), deps)
	require.ErrorContains(t, err, "cannot read config")
}

func TestSet_WriteLinesError(t *testing.T) {
	deps := Deps{
		WithLock:  runLocked,
		ReadLines: func() ([]string, error) { return []string{}, nil },
		Set: func(lines []string, key, value string) ([]string, bool) {
			return append(lines, key+"="+value), false
		},
		WriteLines: func([]string) error { return errors.New("cannot write config") },
	}

	err := set([]string{"color", "false"}, noFlags(), deps)
	require.ErrorContains(t, err, "cannot write config")
}

func TestSet_LockError(t *testing.T) {
	deps := Deps{
		WithLock: func(func() error) error { return errors.New("config: lock timeout") },
	}

	err := set([]string{"color", "false"}, noFlags(), deps)
	require.ErrorContains(t, err, "lock timeout")
}

// =========== UNSET TESTS ===========

func TestUnset_Success(t *testing.T) {
	var captured string
	var written []string
	deps := Deps{
		WithLock:  runLocked,
		ReadLines: func() ([]string, error) { return []string{"color=false", "prompt=$"}, nil },
		Unset: func([]string, string) ([]string, bool) {
			return []string{"prompt=$"}, true
		},
		WriteLines: func(lines []string) error {
			written = lines
			return nil
		},
		Printf: func(format string, a ...any) (int, error) {
			captured = fmt.Sprintf(format, a...)
			return 0, nil
		},
	}

	require.NoError(t, unset([]string{"color"}, noFlags(), deps))
	require.Equal(t, "unset color\n", captured)
	require.Equal(t, []string{"prompt=$"}, written)
}

func TestUnset_KeyNotFound(t *testing.T) {
	wrote := false
	deps := Deps{
		WithLock:   runLocked,
		ReadLines:  func() ([]string, error) { return []string{"prompt=$"}, nil },
		Unset:      func(lines []string, _ string) ([]string, bool) { return lines, false },
		WriteLines: func([]string) error { wrote = true; return nil },
	}

	err := unset([]string{"color"}, noFlags(), deps)
	require.True(t, usage.IsKind(err, usage.ErrInvalidConfigKey))
	require.False(t, wrote)
}

func TestUnset_MissingKey(t *testing.T) {
	err := unset([]string{}, noFlags(), Deps{})

	require.True(t, usage.IsKind(err, usage.ErrMissingArgument))
}

func TestUnset_AllFlag(t *testing.T) {
	var written []string
	var captured string
	deps := Deps{
		WithLock: runLocked,
		WriteLines: func(lines []string) error {
			written = lines
			return nil
		},
		Println: func(a ...any) (int, error) {
			captured = fmt.Sprint(a...)
			return 0, nil
		},
	}

	require.NoError(t, unset([]string{}, dispatchers.NewParsedFlags([]string{"--all"}), deps))
	require.Empty(t, written)
	require.Contains(t, captured, "all config entries removed")
}

func TestUnset_AllFlagWithArgs(t *testing.T) {
	err := unset([]string{"color"}, dispatchers.NewParsedFlags([]string{"--all"}), Deps{})

	require.True(t, usage.IsKind(err, usage.ErrInvalidFlag))
}

func TestUnset_WriteLinesError(t *testing.T) {
	deps := Deps{
		WithLock:   runLocked,
		ReadLines:  func() ([]string, error) { return []string{"color=false"}, nil },
		Unset:      func([]string, string) ([]string, bool) { return nil, true },
		WriteLines: func([]string) error { return errors.New("cannot write config") },
	}

	err := unset([]string{"color"}, noFlags(), deps)
	require.ErrorContains(t, err, "cannot write config")
}

// =========== LIST TESTS ===========

func collectPrintf(lines *[]string) func(string, ...any) (int, error) {
	return func(format string, a ...any) (int, error) {
		*lines = append(*lines, fmt.Sprintf(format, a...))
		return 0, nil
	}
}

func TestList_ShowsDefaults(t *testing.T) {
	var printed []string
	deps := Deps{
		GetAll: func() (map[string]string, error) { return map[string]string{}, nil },
		Printf: collectPrintf(&printed),
	}

	require.NoError(t, list([]string{}, noFlags(), deps))
	require.Equal(t, []string{
		"prompt=> \n",
		"echo_input=false\n",
		"strict_arguments=false\n",
		"color=true\n",
		"enable_log=true\n",
		"log_level=info\n",
	}, printed)
}

func TestList_ShowsColorOverridesWhenSet(t *testing.T) {
	var printed []string
	deps := Deps{
		GetAll: func() (map[string]string, error) {
			return map[string]string{
				"color_success": "46",
				"color_error":   "196",
				"log_level":     "debug",
			}, nil
		},
		Printf: collectPrintf(&printed),
	}

	require.NoError(t, list([]string{}, noFlags(), deps))
	require.Len(t, printed, 8)
	require.Contains(t, printed, "log_level=debug\n")
	require.Contains(t, printed, "color_error=196\n")
}

func TestList_GetAllError(t *testing.T) {
	deps := Deps{
		GetAll: func() (map[string]string, error) { return nil, errors.New("cannot read config") },
	}

	err := list([]string{}, noFlags(), deps)
	require.ErrorContains(t, err, "cannot read config")
}

func TestList_JSON(t *testing.T) {
	var output string
	deps := Deps{
		GetAll: func() (map[string]string, error) { return map[string]string{"color": "false"}, nil },
		Println: func(a ...any) (int, error) {
			output = fmt.Sprint(a...)
			return 0, nil
		},
	}

	require.NoError(t, list([]string{}, dispatchers.NewParsedFlags([]string{"--json"}), deps))
	require.Contains(t, output, `"key": "color"`)
	require.Contains(t, output, `"value": "false"`)
}
