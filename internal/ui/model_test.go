package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitnag/internal/domain"
	"gitnag/internal/ports"
	"gitnag/internal/ports/mocks"
	"gitnag/internal/services"
)

type fakeReconciler struct {
	calls   int
	emitted bool
}

func (f *fakeReconciler) Reconcile(context.Context) bool {
	f.calls++
	return f.emitted
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testThresholds() domain.Thresholds {
	return domain.Thresholds{Uncommitted: 30 * time.Minute, Unpushed: 30 * time.Minute}
}

func newTestModel(r Reconciler, d ports.CommandDispatcher) *Model {
	m := NewModel(context.Background(), r, d, testThresholds())
	m.now = func() time.Time { return testNow }
	return m
}

func snapshot() SnapshotMsg {
	since := testNow.Add(-45 * time.Minute)
	ahead := 0
	return SnapshotMsg{Statuses: []domain.RepositoryStatus{
		{RootID: "/a", UncommittedChangesCount: 3, UncommittedChangesSince: &since},
		{RootID: "/b", UnpushedCommitsCount: &ahead},
	}}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_SnapshotFillsTable(t *testing.T) {
	m := newTestModel(&fakeReconciler{}, nil)

	m.Update(snapshot())

	rows := m.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "/a", rows[0][0])
	assert.Equal(t, "3", rows[0][1])
	assert.Equal(t, "45m", rows[0][2])
	assert.Equal(t, services.StateOverdue, rows[0][5])
	assert.Equal(t, "0", rows[1][3])
	assert.Equal(t, services.StateClean, rows[1][5])
	assert.Contains(t, m.View(), domain.MessageUncommitted)
}

func TestUpdate_NoUpstreamShowsDash(t *testing.T) {
	m := newTestModel(&fakeReconciler{}, nil)

	m.Update(SnapshotMsg{Statuses: []domain.RepositoryStatus{{RootID: "/c"}}})

	assert.Equal(t, "-", m.table.Rows()[0][3])
	assert.Contains(t, m.View(), "All caught up.")
}

func TestView_DirtyBeforeThreshold(t *testing.T) {
	m := newTestModel(&fakeReconciler{}, nil)
	since := testNow.Add(-5 * time.Minute)

	m.Update(SnapshotMsg{Statuses: []domain.RepositoryStatus{
		{RootID: "/d", UncommittedChangesCount: 1, UncommittedChangesSince: &since},
	}})

	assert.Equal(t, services.StateDirty, m.table.Rows()[0][5])
	assert.Contains(t, m.View(), "nothing overdue yet")
}

func TestUpdate_RefreshRunsReconcileOnce(t *testing.T) {
	r := &fakeReconciler{emitted: true}
	m := newTestModel(r, nil)

	_, cmd := m.Update(keyMsg("r"))
	require.NotNil(t, cmd)

	_, second := m.Update(keyMsg("r"))
	assert.Nil(t, second, "refresh already running")

	msg := cmd()
	assert.Equal(t, reconciledMsg{emitted: true}, msg)
	assert.Equal(t, 1, r.calls)

	m.Update(msg)
	assert.False(t, m.refreshing)
}

func TestUpdate_SkippedRefreshShowsNotice(t *testing.T) {
	m := newTestModel(&fakeReconciler{}, nil)

	m.Update(reconciledMsg{emitted: false})

	assert.Contains(t, m.View(), "refresh skipped")
}

func TestUpdate_OpenDispatchesSelectedRepository(t *testing.T) {
	d := mocks.NewMockCommandDispatcher(t)
	d.EXPECT().Dispatch(mock.Anything, domain.CommandOpenGitView, "/a").Return(nil).Once()
	m := newTestModel(&fakeReconciler{}, d)
	m.Update(snapshot())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.NoError(t, m.err)
	assert.Contains(t, m.View(), "opened /a")
}

func TestUpdate_OpenErrorIsShown(t *testing.T) {
	d := mocks.NewMockCommandDispatcher(t)
	d.EXPECT().Dispatch(mock.Anything, domain.CommandOpenGitView, "/a").Return(errors.New("no editor")).Once()
	m := newTestModel(&fakeReconciler{}, d)
	m.Update(snapshot())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(cmd())

	assert.Contains(t, m.View(), "Error: no editor")
}

func TestUpdate_OpenWithoutRowsIsNoop(t *testing.T) {
	d := mocks.NewMockCommandDispatcher(t)
	m := newTestModel(&fakeReconciler{}, d)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(&fakeReconciler{}, nil)

	_, cmd := m.Update(keyMsg("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView_WaitingBeforeFirstSnapshot(t *testing.T) {
	m := newTestModel(&fakeReconciler{}, nil)

	assert.Contains(t, m.View(), "waiting for the first check")
}
