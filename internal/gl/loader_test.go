package gl

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingProc(t *testing.T) {
	var asked []string
	gl, err := Load(func(name string) unsafe.Pointer {
		asked = append(asked, name)
		return nil
	})

	assert.Nil(t, gl)
	require.ErrorIs(t, err, ErrMissingProc)
	assert.ErrorContains(t, err, "glClearColor")
	assert.Equal(t, []string{"glClearColor"}, asked)
}

func TestLoadReportsFirstMissing(t *testing.T) {
	dummy := new(byte)
	_, err := Load(func(name string) unsafe.Pointer {
		if name == "glGetError" {
			return nil
		}
		return unsafe.Pointer(dummy)
	})

	require.ErrorIs(t, err, ErrMissingProc)
	assert.ErrorContains(t, err, "glGetError")
}

func TestGostring(t *testing.T) {
	assert.Equal(t, "", gostring(nil))

	b := []byte("4.6.0 NVIDIA\x00trailing")
	assert.Equal(t, "4.6.0 NVIDIA", gostring(&b[0]))
}
