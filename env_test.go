package bebop

import "testing"

func Test_Env_Insert_Overwrites_Within_Frame(t *testing.T) {
	env := NewEnv()
	env.Push(nil)
	env.Insert("x", Num(1))
	env.Insert("x", Num(2))
	v, ok := env.Get("x")
	if !ok {
		t.Fatal("x should resolve")
	}
	wantNum(t, v, 2)
}

func Test_Env_Inner_Frame_Shadows_Outer(t *testing.T) {
	env := NewEnv()
	env.Push(Frame{"x": Num(1)})
	env.Push(Frame{"x": Num(2)})
	v, _ := env.Get("x")
	wantNum(t, v, 2)

	env.Pop()
	v, _ = env.Get("x")
	wantNum(t, v, 1)
}

func Test_Env_Lookup_Walks_Outward(t *testing.T) {
	env := NewEnv()
	env.Push(Frame{"y": Num(9)})
	env.Push(nil)
	env.Push(nil)
	v, ok := env.Get("y")
	if !ok {
		t.Fatal("y should resolve through outer frames")
	}
	wantNum(t, v, 9)

	if _, ok := env.Get("absent"); ok {
		t.Fatal("absent name should not resolve")
	}
}

func Test_Env_Get_Returns_A_Copy(t *testing.T) {
	env := NewEnv()
	env.Push(nil)
	env.Insert("q", Qexpr(Num(1), Num(2)))

	got, _ := env.Get("q")
	got.Data.([]Value)[0] = Num(99)

	again, _ := env.Get("q")
	wantForm(t, again, "[1 2]")
}

func Test_Env_InsertGlobal_Reaches_Frame_Zero(t *testing.T) {
	env := NewEnv()
	env.Push(nil)
	env.Push(nil)
	env.InsertGlobal("g", Num(7))
	env.Pop()
	v, ok := env.Get("g")
	if !ok {
		t.Fatal("g should live in the global frame")
	}
	wantNum(t, v, 7)
}

func Test_Env_Empty_Operations_Are_Safe(t *testing.T) {
	env := NewEnv()
	env.Insert("x", Num(1)) // no frame to land in
	if _, ok := env.Get("x"); ok {
		t.Fatal("insert on an empty env should be a no-op")
	}
	if _, ok := env.Pop(); ok {
		t.Fatal("pop on an empty env")
	}
	if _, ok := env.Peek(); ok {
		t.Fatal("peek on an empty env")
	}
	if env.Depth() != 0 {
		t.Fatalf("depth: %d", env.Depth())
	}
}

func Test_Env_Copy_Is_Independent(t *testing.T) {
	env := NewEnv()
	env.Push(Frame{"x": Num(1)})
	cp := env.Copy()
	env.Insert("y", Num(2))
	if _, ok := cp.Get("y"); ok {
		t.Fatal("copy should not see later inserts")
	}
	v, _ := cp.Get("x")
	wantNum(t, v, 1)
}
