package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/create-fs-app/cli/internal/project"
)

func stack(m project.Monorepo, fe project.Frontend, be project.Backend, db project.Database, orm project.ORM) project.Stack {
	return project.Stack{
		Monorepo:       m,
		PackageManager: project.NPM,
		Apps: project.Apps{
			Frontend: project.FrontendApp{Framework: fe, Styling: project.Tailwind},
			Backend:  project.BackendApp{Framework: be, Database: db, ORM: orm},
		},
	}
}

func entry(key string) Entry {
	return Entry{Key: key, Metadata: Metadata{URL: "https://example.com/t/" + key, Description: key}}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		stack project.Stack
		want  string
	}{
		{
			name:  "punctuation stripped from frameworks",
			stack: stack(project.Turborepo, project.NextJS, project.NestJS, project.PostgreSQL, project.Prisma),
			want:  "turborepo-nextjs-nestjs-postgresql-prisma",
		},
		{
			name:  "missing orm becomes none",
			stack: stack(project.Turborepo, project.React, project.Express, project.MongoDB, ""),
			want:  "turborepo-react-express-mongodb-none",
		},
		{
			name:  "hyphenated backend kept",
			stack: stack(project.Nx, project.Vue, project.FastifyTS, project.SQLite, project.Drizzle),
			want:  "nx-vue-fastify-ts-sqlite-drizzle",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.stack))
		})
	}
}

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry(
		entry("turborepo-react-express-postgresql-prisma"),
		entry("turborepo-react-express-mongodb"),
		entry("turborepo-react-express-mysql-prisma"),
		entry("nx-react-express-mongodb-mongoose"),
	)

	tests := []struct {
		name    string
		stack   project.Stack
		wantKey string
		wantOK  bool
	}{
		{
			name:    "exact match",
			stack:   stack(project.Nx, project.React, project.Express, project.MongoDB, project.Mongoose),
			wantKey: "nx-react-express-mongodb-mongoose",
			wantOK:  true,
		},
		{
			name:    "orm-stripped key wins over partial prefix",
			stack:   stack(project.Turborepo, project.React, project.Express, project.MongoDB, project.Mongoose),
			wantKey: "turborepo-react-express-mongodb",
			wantOK:  true,
		},
		{
			name:    "partial prefix returns first in catalog order",
			stack:   stack(project.Turborepo, project.React, project.Express, project.SQLite, project.Drizzle),
			wantKey: "turborepo-react-express-postgresql-prisma",
			wantOK:  true,
		},
		{
			name:   "no match",
			stack:  stack(project.Lerna, project.Angular, project.Koa, project.MySQL, ""),
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := reg.Resolve(tt.stack)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, got.Key)
		})
	}
}

func TestRegistry_Suggest(t *testing.T) {
	reg := NewRegistry(
		entry("turborepo-a"),
		entry("nx-a"),
		entry("turborepo-b"),
		entry("turborepo-c"),
		entry("turborepo-d"),
	)

	got := reg.Suggest(stack(project.Turborepo, project.Angular, project.Koa, project.MySQL, ""))
	require.Len(t, got, 3)
	assert.Equal(t, []string{"turborepo-a", "turborepo-b", "turborepo-c"}, keys(got))

	assert.Empty(t, reg.Suggest(stack(project.Lerna, project.React, project.Express, project.MySQL, "")))
}

func TestDefault_Catalog(t *testing.T) {
	reg := Default()
	entries := reg.List()
	require.Len(t, entries, 7)

	for _, e := range entries {
		assert.Equal(t, BaseURL+"/template-"+e.Key, e.Metadata.URL)
		assert.Equal(t, DefaultBranch, e.Metadata.BranchOrDefault())
		assert.NotEmpty(t, e.Metadata.Features)

		s, err := StackFromKey(e.Key)
		require.NoError(t, err, e.Key)
		got, ok := reg.Resolve(s)
		require.True(t, ok, e.Key)
		assert.Equal(t, e.Key, got.Key)
	}
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	reg := NewRegistry(Entry{Key: "k", Metadata: Metadata{Features: []string{"a"}}})
	e, ok := reg.Get("k")
	require.True(t, ok)
	e.Metadata.Features[0] = "mutated"

	again, _ := reg.Get("k")
	assert.Equal(t, "a", again.Metadata.Features[0])
}

func TestRegistry_FindAndSearch(t *testing.T) {
	reg := Default()

	e, ok := reg.Find("nx-react-express-mongodb-mongoose")
	require.True(t, ok)
	assert.Equal(t, "nx-react-express-mongodb-mongoose", e.Key)

	e, ok = reg.Find("vue")
	require.True(t, ok)
	assert.Equal(t, "turborepo-vue-nestjs-postgresql-typeorm", e.Key)

	_, ok = reg.Find("svelte")
	assert.False(t, ok)
	_, ok = reg.Find("  ")
	assert.False(t, ok)

	assert.Equal(t, []string{"nx-nextjs-nestjs-postgresql-prisma"}, keys(reg.Search("storybook")))
	assert.Len(t, reg.Search("MONGOOSE"), 2)
	assert.Empty(t, reg.Search("svelte"))
}

func TestRegistry_Stats(t *testing.T) {
	st := Default().Stats()
	assert.Equal(t, 7, st.Total)
	assert.Equal(t, map[string]int{"turborepo": 4, "nx": 2, "lerna": 1}, st.ByMonorepo)
	assert.Equal(t, 3, st.ByFrontend["nextjs"])
	assert.Equal(t, 4, st.ByBackend["express"])
}

func TestStackFromKey(t *testing.T) {
	s, err := StackFromKey("turborepo-nextjs-nestjs-postgresql-prisma")
	require.NoError(t, err)
	assert.Equal(t, project.Turborepo, s.Monorepo)
	assert.Equal(t, project.NextJS, s.Apps.Frontend.Framework)
	assert.Equal(t, project.NestJS, s.Apps.Backend.Framework)
	assert.Equal(t, project.PostgreSQL, s.Apps.Backend.Database)
	assert.Equal(t, project.Prisma, s.Apps.Backend.ORM)
	assert.Equal(t, project.NPM, s.PackageManager)
	assert.Equal(t, project.Tailwind, s.Apps.Frontend.Styling)
	assert.True(t, s.Apps.Frontend.Linting)
	assert.True(t, s.Apps.Backend.Docker)

	s, err = StackFromKey("nx-vue-fastify-ts-sqlite-none")
	require.NoError(t, err)
	assert.Equal(t, project.FastifyTS, s.Apps.Backend.Framework)
	assert.Empty(t, s.Apps.Backend.ORM)

	for _, bad := range []string{"", "gulp-react-express-mongodb-none", "nx-svelte-express-mongodb-none", "nx-react-rails-mongodb-none", "nx-react-express"} {
		_, err := StackFromKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestCustom(t *testing.T) {
	m := Custom("https://github.com/acme/starter.git")
	assert.Equal(t, "https://github.com/acme/starter.git", m.URL)
	assert.Equal(t, DefaultBranch, m.Branch)
	assert.Equal(t, "Custom template", m.Description)
	assert.Equal(t, []string{"Custom"}, m.Features)
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://github.com/acme/starter", false},
		{"https://github.com/acme/starter.git", false},
		{"https://gitlab.example.org/team/my_repo", false},
		{"", true},
		{"http://github.com/acme/starter", true},
		{"git@github.com:acme/starter.git", true},
		{"https://github.com/acme", true},
		{"https://github.com/acme/starter/tree/main", true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func keys(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}
