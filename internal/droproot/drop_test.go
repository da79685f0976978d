package droproot_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/favonia/hetzner-ddns/internal/droproot"
	"github.com/favonia/hetzner-ddns/internal/mocks"
	"github.com/favonia/hetzner-ddns/internal/pp"
)

func TestDefaultID(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		effective int
		realID    int
		expected  int
	}{
		"effective": {1001, 1002, 1001},
		"real":      {0, 1002, 1002},
		"root":      {0, 0, 1000},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, droproot.DefaultID(tc.effective, tc.realID))
		})
	}
}

//nolint:paralleltest // changes the IDs and capabilities of the whole process
func TestDropPrivilegesToCurrentUser(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("dropping the privileges of a root test process would affect other tests")
	}

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().IsShowing(pp.Info).Return(false)
	// supplementary groups cannot be erased without privileges
	mockPP.EXPECT().Warningf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockPP.EXPECT().Infof(pp.EmojiDisabled, gomock.Any()).AnyTimes()

	uid, gid := os.Geteuid(), os.Getegid()
	droproot.DropPrivileges(mockPP, uid, gid)
	require.Equal(t, uid, os.Geteuid())
	require.Equal(t, gid, os.Getegid())
}
