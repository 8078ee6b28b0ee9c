package subscribers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpsert_Validation(t *testing.T) {
	svc := NewService(NewStore(setupDB(t)), zap.NewNop())

	tests := []struct {
		name string
		in   Input
		want string
	}{
		{"No Name", Input{Email: "a@example.com", Servers: []string{"NA1"}}, "firstname or lastname"},
		{"Blank Names", Input{Firstname: " ", Lastname: "\t", Email: "a@example.com", Servers: []string{"NA1"}}, "firstname or lastname"},
		{"No Email", Input{Firstname: "Ada", Servers: []string{"NA1"}}, "email is required"},
		{"No Servers", Input{Firstname: "Ada", Email: "a@example.com"}, "at least one server"},
		{"Only Blank Servers", Input{Firstname: "Ada", Email: "a@example.com", Servers: []string{"", " "}}, "at least one server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Upsert(context.Background(), tt.in)
			assert.ErrorIs(t, err, ErrInvalidSubscriber)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpsert_LastNameOnlyIsAccepted(t *testing.T) {
	svc := NewService(NewStore(setupDB(t)), zap.NewNop())

	sub, created, err := svc.Upsert(context.Background(), Input{Lastname: "Hopper", Email: "grace@example.com", Servers: []string{"NA1"}})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Hopper", sub.FullName())
}

func TestUpsert_ReplacesByEmail(t *testing.T) {
	svc := NewService(NewStore(setupDB(t)), zap.NewNop())
	ctx := context.Background()

	first, created, err := svc.Upsert(ctx, Input{Firstname: "Ada", Email: "ada@example.com", Servers: []string{"NA1", "EU2"}})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.Upsert(ctx, Input{Firstname: "Ada", Lastname: "Lovelace", Email: " ada@example.com ", Servers: []string{"AP3", "AP3"}})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ada Lovelace", all[0].FullName())
	assert.Equal(t, []string{"AP3"}, all[0].Keys())
}

func TestList_ByServer(t *testing.T) {
	svc := NewService(NewStore(setupDB(t)), zap.NewNop())
	ctx := context.Background()

	_, _, err := svc.Upsert(ctx, Input{Firstname: "A", Email: "a@example.com", Servers: []string{"NA1"}})
	require.NoError(t, err)
	_, _, err = svc.Upsert(ctx, Input{Firstname: "B", Email: "b@example.com", Servers: []string{"EU2"}})
	require.NoError(t, err)

	watchers, err := svc.List(ctx, "NA1")
	require.NoError(t, err)
	require.Len(t, watchers, 1)
	assert.Equal(t, "a@example.com", watchers[0].Email)
}

func TestImportYAML(t *testing.T) {
	svc := NewService(NewStore(setupDB(t)), zap.NewNop())
	ctx := context.Background()

	_, _, err := svc.Upsert(ctx, Input{Firstname: "Ada", Email: "ada@example.com", Servers: []string{"NA1"}})
	require.NoError(t, err)

	doc := `
subscribers:
  - firstname: Ada
    lastname: Lovelace
    email: ada@example.com
    servers: [NA1, EU2]
  - firstname: Grace
    email: grace@example.com
    servers:
      - AP3
  - firstname: Nobody
    email: nobody@example.com
`
	report, err := svc.ImportYAML(ctx, strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Updated)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, 2, report.Rejected[0].Index)
	assert.Equal(t, "nobody@example.com", report.Rejected[0].Email)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImportYAML_Empty(t *testing.T) {
	svc := NewService(NewStore(setupDB(t)), zap.NewNop())

	report, err := svc.ImportYAML(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, report.Created)
}

func TestImportYAML_Malformed(t *testing.T) {
	svc := NewService(NewStore(setupDB(t)), zap.NewNop())

	_, err := svc.ImportYAML(context.Background(), strings.NewReader("subscribers: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse import file")
}
