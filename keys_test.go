package switchback_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchback-web/switchback"
)

func TestKeyString(t *testing.T) {
	require.Equal(t, "switchback context key: IpAddrKey", switchback.IpAddrKey.String())
	require.Equal(t, "switchback context key: RequestIDKey", switchback.RequestIDKey.String())
}
