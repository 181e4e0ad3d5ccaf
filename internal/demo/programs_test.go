package demo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamesAreAllBuildable(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			program, err := Build(name)
			require.NoError(t, err)
			require.NotNil(t, program.Tree)
			require.NotNil(t, program.Tree.EntryPoint(), "every demo program must declare an entry point")
		})
	}
}

func TestExprNamesAreAllBuildable(t *testing.T) {
	for _, name := range ExprNames() {
		t.Run(name, func(t *testing.T) {
			expr, err := BuildExpr(name)
			require.NoError(t, err)
			require.NotNil(t, expr)
		})
	}
}

func TestBuildUnknownNameFails(t *testing.T) {
	_, err := Build("does-not-exist")
	require.Error(t, err)
}

func TestBuildExprUnknownNameFails(t *testing.T) {
	_, err := BuildExpr("does-not-exist")
	require.Error(t, err)
}
