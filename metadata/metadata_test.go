//go:build unit

package metadata_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellofresh/goledger/metadata"
)

func TestNew(t *testing.T) {
	asserts := assert.New(t)

	m1 := metadata.New()
	asserts.NotNil(m1)

	m2 := metadata.New()
	asserts.NotNil(m2)

	asserts.False(m1 == m2, "New instances should not be identical")
}

func TestWithValue(t *testing.T) {
	t.Run("with instance", func(t *testing.T) {
		asserts := assert.New(t)

		m := metadata.New()
		asserts.Nil(m.Value(""))

		m = metadata.WithValue(m, "", "empty_string")
		asserts.Equal("empty_string", m.Value(""))

		m = metadata.WithValue(m, "second", time.Second)
		asserts.Equal(time.Second, m.Value("second"))
		asserts.Equal("empty_string", m.Value(""))
	})

	t.Run("with nil", func(t *testing.T) {
		var m metadata.Metadata
		m = metadata.WithValue(m, "key", "empty_string")

		assert.Equal(t, "empty_string", m.Value("key"))
		assert.Nil(t, m.Value("unknown"))
	})

	t.Run("parent is not modified", func(t *testing.T) {
		parent := metadata.WithValue(metadata.New(), "stream", "a")
		child := metadata.WithValue(parent, "stream", "b")

		assert.Equal(t, "a", parent.Value("stream"))
		assert.Equal(t, "b", child.Value("stream"))
	})
}

func TestAsMap(t *testing.T) {
	testCases := []struct {
		title       string
		setup       func() metadata.Metadata
		expectedMap map[string]interface{}
	}{
		{
			"empty metadata",
			func() metadata.Metadata {
				return metadata.New()
			},
			map[string]interface{}{},
		},
		{
			"metadata with multiple values",
			func() metadata.Metadata {
				m := metadata.New()
				m = metadata.WithValue(m, "test", nil)
				return metadata.WithValue(m, "another", "value")
			},
			map[string]interface{}{
				"test":    nil,
				"another": "value",
			},
		},
		{
			"metadata with overridden values",
			func() metadata.Metadata {
				m := metadata.New()
				m = metadata.WithValue(m, "test", nil)
				m = metadata.WithValue(m, "another", "value")
				return metadata.WithValue(m, "another", "another_value")
			},
			map[string]interface{}{
				"test":    nil,
				"another": "another_value",
			},
		},
		{
			"metadata from map",
			func() metadata.Metadata {
				return metadata.FromMap(map[string]interface{}{"_stream": "banking:account:1"})
			},
			map[string]interface{}{
				"_stream": "banking:account:1",
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.title, func(t *testing.T) {
			assert.Equal(t, testCase.expectedMap, testCase.setup().AsMap())
		})
	}
}

var jsonTestCases = []struct {
	title    string
	metadata func() metadata.Metadata
	json     string
}{
	{
		"empty metadata",
		func() metadata.Metadata {
			return metadata.New()
		},
		`{}`,
	},
	{
		"metadata with multiple values",
		func() metadata.Metadata {
			m := metadata.New()
			m = metadata.WithValue(m, "test", nil)
			m = metadata.WithValue(m, "_stream_version", float64(3))
			return metadata.WithValue(m, "another", "value")
		},
		`{
			"test": null,
			"_stream_version": 3,
			"another": "value"
		}`,
	},
}

func TestMetadata_MarshalJSON(t *testing.T) {
	for _, testCase := range jsonTestCases {
		t.Run(testCase.title, func(t *testing.T) {
			mJSON, err := json.Marshal(testCase.metadata())

			asserts := assert.New(t)
			asserts.JSONEq(testCase.json, string(mJSON))
			asserts.NoError(err)
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	for _, testCase := range jsonTestCases {
		t.Run(testCase.title, func(t *testing.T) {
			m, err := metadata.UnmarshalJSON([]byte(testCase.json))

			require.NoError(t, err)
			// Need to use AsMap otherwise we can have inconsistent tests results.
			assert.Equal(t, testCase.metadata().AsMap(), m.AsMap())
		})
	}

	t.Run("empty data", func(t *testing.T) {
		m, err := metadata.UnmarshalJSON(nil)

		assert.NoError(t, err)
		assert.Equal(t, map[string]interface{}{}, m.AsMap())
	})

	t.Run("not an object", func(t *testing.T) {
		m, err := metadata.UnmarshalJSON([]byte(`[1,2]`))

		assert.Error(t, err)
		assert.Nil(t, m)
	})
}
