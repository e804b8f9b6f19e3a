// Package types provides core types used across the pitchflow engine.
// This package has ZERO dependencies on other pitchflow packages to avoid
// circular imports. All other packages should import types from here.
package types
