package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SAP-F-2025/learning-data-service/internal/models"
	"gorm.io/gorm"
)

func TestUserPostgreSQL_CreateAndGet(t *testing.T) {
	repo, clock := testRepository(t)
	ctx := context.Background()

	created, err := repo.User().Create(ctx, &models.User{
		ID:          "uid-ada",
		Email:       "ada@example.com",
		DisplayName: "Ada",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.LoginCount != 1 {
		t.Errorf("Create: expected login_count 1, got %d", created.LoginCount)
	}
	if created.Role != models.RoleUser {
		t.Errorf("Create: expected default role %q, got %q", models.RoleUser, created.Role)
	}
	if !created.CreatedAt.Equal(clock.Now()) || !created.LastLogin.Equal(clock.Now()) {
		t.Errorf("Create: expected timestamps %v, got created=%v last_login=%v", clock.Now(), created.CreatedAt, created.LastLogin)
	}

	byID, err := repo.User().GetByID(ctx, "uid-ada")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID == nil {
		t.Fatal("GetByID: expected user, got nil")
	}
	if byID.Email != created.Email || byID.DisplayName != created.DisplayName || byID.Role != created.Role ||
		byID.LoginCount != created.LoginCount || !byID.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("GetByID: got %+v, want %+v", byID, created)
	}

	byEmail, err := repo.User().GetByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail == nil || byEmail.ID != "uid-ada" {
		t.Fatalf("GetByEmail: unexpected result %+v", byEmail)
	}
}

func TestUserPostgreSQL_MissingUserIsNotAnError(t *testing.T) {
	repo, _ := testRepository(t)
	ctx := context.Background()

	user, err := repo.User().GetByID(ctx, "nobody")
	if err != nil || user != nil {
		t.Fatalf("GetByID: expected (nil, nil), got (%+v, %v)", user, err)
	}

	user, err = repo.User().GetByEmail(ctx, "nobody@example.com")
	if err != nil || user != nil {
		t.Fatalf("GetByEmail: expected (nil, nil), got (%+v, %v)", user, err)
	}
}

func TestUserPostgreSQL_DuplicateEmailFails(t *testing.T) {
	repo, _ := testRepository(t)
	ctx := context.Background()

	if _, err := repo.User().Create(ctx, &models.User{ID: "u1", Email: "same@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.User().Create(ctx, &models.User{ID: "u2", Email: "same@example.com"}); err == nil {
		t.Fatal("Create: expected unique email violation")
	}
	if n := countRows(t, repo.db, &models.User{}); n != 1 {
		t.Errorf("expected 1 user after failed insert, got %d", n)
	}
}

func TestUserPostgreSQL_UpdateLogin(t *testing.T) {
	repo, clock := testRepository(t)
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		ok, err := repo.User().UpdateLogin(ctx, "ghost")
		if err != nil {
			t.Fatalf("UpdateLogin: %v", err)
		}
		if ok {
			t.Fatal("UpdateLogin: expected false for unknown user")
		}
		if n := countRows(t, repo.db, &models.User{}); n != 0 {
			t.Errorf("expected no rows, got %d", n)
		}
	})

	t.Run("counts every call", func(t *testing.T) {
		if _, err := repo.User().Create(ctx, &models.User{ID: "u1", Email: "u1@example.com"}); err != nil {
			t.Fatalf("Create: %v", err)
		}

		const logins = 5
		var last time.Time
		for i := 0; i < logins; i++ {
			last = clock.Advance(time.Hour)
			ok, err := repo.User().UpdateLogin(ctx, "u1")
			if err != nil {
				t.Fatalf("UpdateLogin: %v", err)
			}
			if !ok {
				t.Fatal("UpdateLogin: expected true")
			}
		}

		user, err := repo.User().GetByID(ctx, "u1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if user.LoginCount != 1+logins {
			t.Errorf("expected login_count %d, got %d", 1+logins, user.LoginCount)
		}
		if !user.LastLogin.Equal(last) {
			t.Errorf("expected last_login %v, got %v", last, user.LastLogin)
		}
	})
}

func TestUserPostgreSQL_ConcurrentLoginsAreAllCounted(t *testing.T) {
	repo, _ := testRepository(t)
	ctx := context.Background()
	if _, err := repo.User().Create(ctx, &models.User{ID: "u1", Email: "u1@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	const callers = 10
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.User().UpdateLogin(ctx, "u1")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}
	user, err := repo.User().GetByID(ctx, "u1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.LoginCount != 1+callers {
		t.Errorf("expected login_count %d, got %d", 1+callers, user.LoginCount)
	}
}

func TestUserPostgreSQL_InterleavedLoginIsNotOverwritten(t *testing.T) {
	repo, _ := testRepository(t)
	ctx := context.Background()
	if _, err := repo.User().Create(ctx, &models.User{ID: "u1", Email: "u1@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Another login lands between any earlier read of the counter and this update.
	fired := false
	err := repo.db.Callback().Update().Before("gorm:update").Register("test:interleaved_login", func(db *gorm.DB) {
		if fired || db.Statement.Table != (models.User{}).TableName() {
			return
		}
		fired = true
		if err := db.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE users SET login_count = login_count + 1 WHERE id = ?", "u1").Error; err != nil {
			_ = db.AddError(err)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	ok, err := repo.User().UpdateLogin(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("UpdateLogin: ok=%v err=%v", ok, err)
	}
	if !fired {
		t.Fatal("interleaved login never ran")
	}
	user, err := repo.User().GetByID(ctx, "u1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.LoginCount != 3 {
		t.Errorf("expected both logins counted on top of the first, got login_count %d", user.LoginCount)
	}
}

func TestUserPostgreSQL_ListByLastLogin(t *testing.T) {
	repo, clock := testRepository(t)
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		clock.Advance(time.Minute)
		if _, err := repo.User().Create(ctx, &models.User{ID: id, Email: id + "@example.com"}); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}
	clock.Advance(time.Minute)
	if _, err := repo.User().UpdateLogin(ctx, "first"); err != nil {
		t.Fatalf("UpdateLogin: %v", err)
	}

	users, err := repo.User().ListByLastLogin(ctx)
	if err != nil {
		t.Fatalf("ListByLastLogin: %v", err)
	}

	want := []string{"first", "third", "second"}
	if len(users) != len(want) {
		t.Fatalf("expected %d users, got %d", len(want), len(users))
	}
	for i, id := range want {
		if users[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, users[i].ID)
		}
	}
}
