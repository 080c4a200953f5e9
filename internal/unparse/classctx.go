package unparse

// classStack 外层类名栈，进入类体时压栈，离开时出栈
//
// 构造器在语法树里没有名字，输出时取栈顶的类名。
type classStack struct {
	names []string
}

func (s *classStack) push(name string) {
	s.names = append(s.names, name)
}

func (s *classStack) pop() {
	if len(s.names) > 0 {
		s.names = s.names[:len(s.names)-1]
	}
}

// current 返回最内层的类名，栈为空说明构造器出现在类体之外
func (s *classStack) current() (string, error) {
	if len(s.names) == 0 {
		return "", &ContractError{Message: "constructor outside of a class body"}
	}
	return s.names[len(s.names)-1], nil
}

func (s *classStack) depth() int {
	return len(s.names)
}
