package topics

import (
	"fmt"

	"github.com/typedrill/typedrill/internal/catalog"
)

func init() {
	r, err := buildRegistry(seedTopics())
	if err != nil {
		// Topic content ships with the binary; a bad set is a build defect.
		panic(fmt.Sprintf("topics: %v", err))
	}
	reg = r
}

// seedTopics returns the full topic set in display order.
func seedTopics() []Topic {
	return []Topic{
		{
			ID:          "types",
			Title:       "Basic Types",
			Description: "The building blocks of TypeScript's type system",
			Category:    catalog.CategoryBasics,
			Content: `TypeScript is a superset of JavaScript that adds static types.

Primitive types: string, number, boolean, bigint, symbol.
Special types: any (anything, disables checking), unknown (safer than any),
never (no value can exist), void (no return value), null and undefined.

Arrays are written Type[] or Array<Type>; unions with | let a value be one
of several types.`,
			CodeExample: `let username: string = "Ada";
let age: number = 25;
let isActive: boolean = true;

let numbers: number[] = [1, 2, 3];
let strings: Array<string> = ["a", "b", "c"];

let user: { name: string; age: number } = {
  name: "Grace",
  age: 30,
};

// any disables type checking; avoid where possible
let anything: any = 42;
anything = "could be anything";

// union types
let value: string | number = "hello";
value = 42;`,
			KeyPoints: []string{
				"Type annotations use the : syntax",
				"Arrays can be written Type[] or Array<Type>",
				"any turns off type checking; use it sparingly",
				"Union types let a variable hold one of several types",
			},
		},
		{
			ID:          "interfaces",
			Title:       "Interfaces",
			Description: "Describing the shape of objects",
			Category:    catalog.CategoryBasics,
			Content: `An interface describes the properties and methods an object must have.

Optional properties are marked with ?, read-only properties with readonly.
Interfaces can extend other interfaces (including several at once), and can
also describe function signatures.`,
			CodeExample: `interface User {
  id: number;
  name: string;
  email: string;
  age?: number;          // optional
  readonly createdAt: Date; // read-only
}

interface AdminUser extends User {
  permissions: string[];
  role: "admin" | "superadmin";
}

// a function type interface
interface SearchFunc {
  (source: string, subString: string): boolean;
}

const search: SearchFunc = (source, subString) =>
  source.includes(subString);`,
			KeyPoints: []string{
				"Interfaces are declared with the interface keyword",
				"Optional properties use the ? modifier",
				"readonly properties can only be set at initialization",
				"extends composes interfaces by inheritance",
			},
		},
		{
			ID:          "functions",
			Title:       "Function Types",
			Description: "Annotating parameters and return values",
			Category:    catalog.CategoryBasics,
			Content: `Functions take type annotations on their parameters and return value.

Optional parameters (marked ?) must follow required ones; default values
can stand in for optionality. Rest parameters collect the remaining
arguments into a typed array. Overloads give one implementation several
call signatures.`,
			CodeExample: `function add(a: number, b: number): number {
  return a + b;
}

const multiply = (x: number, y: number): number => x * y;

function greet(name: string, greeting?: string): string {
  return greeting ? greeting + ", " + name + "!" : "Hello, " + name + "!";
}

function sum(...numbers: number[]): number {
  return numbers.reduce((total, n) => total + n, 0);
}

// overloads: one implementation, several signatures
function processInput(input: string): string;
function processInput(input: number): number;
function processInput(input: string | number): string | number {
  if (typeof input === "string") {
    return input.toUpperCase();
  }
  return input * 2;
}`,
			KeyPoints: []string{
				"Return types are annotated after the parameter list",
				"Optional parameters must come after required ones",
				"Default parameters can replace optional ones",
				"Rest parameters use the ... syntax",
			},
		},
		{
			ID:          "classes",
			Title:       "Classes",
			Description: "Object-oriented programming with types",
			Category:    catalog.CategoryBasics,
			Content: `TypeScript supports ES6 classes with typed members and access
modifiers: public (the default), private (declaring class only), and
protected (declaring class and subclasses).

Classes inherit with extends and call the parent through super. Abstract
classes cannot be instantiated; subclasses must implement their abstract
methods.`,
			CodeExample: `class Animal {
  private name: string;
  protected age: number;

  constructor(name: string, age: number) {
    this.name = name;
    this.age = age;
  }

  speak(): void {
    console.log(this.name + " makes a sound");
  }
}

class Dog extends Animal {
  constructor(name: string, age: number, private breed: string) {
    super(name, age);
  }

  speak(): void {
    console.log("Woof! Woof!");
  }
}

abstract class Shape {
  abstract calculateArea(): number;

  displayArea(): void {
    console.log("Area: " + this.calculateArea());
  }
}

class Circle extends Shape {
  constructor(private radius: number) {
    super();
  }

  calculateArea(): number {
    return Math.PI * this.radius * this.radius;
  }
}`,
			KeyPoints: []string{
				"Access modifiers: public (default), private, protected",
				"readonly creates properties assignable only at construction",
				"Abstract classes can only be inherited, never instantiated",
				"super calls the parent constructor and methods",
			},
		},
		{
			ID:          "enums",
			Title:       "Enums",
			Description: "Named sets of related constants",
			Category:    catalog.CategoryBasics,
			Content: `Enums define a named group of constants.

Numeric enums auto-increment from 0 (or from any explicitly assigned
value). String enums give every member an explicit, readable value.
A const enum is inlined at compile time and emits no runtime object.`,
			CodeExample: `enum Direction {
  Up,    // 0
  Down,  // 1
  Left,  // 2
  Right, // 3
}

enum StatusCode {
  Success = 200,
  NotFound = 404,
  ServerError = 500,
}

enum UserRole {
  Admin = "admin",
  User = "user",
  Guest = "guest",
}

// inlined at compile time, no runtime object
const enum Colors {
  Red = "#FF0000",
  Green = "#00FF00",
  Blue = "#0000FF",
}

interface Order {
  id: number;
  status: "pending" | "shipped" | "delivered";
}`,
			KeyPoints: []string{
				"Enums are declared with the enum keyword",
				"Numeric enums auto-increment from 0",
				"String enums are easier to read and debug",
				"const enum is inlined at compile time for performance",
			},
		},
		{
			ID:          "generics",
			Title:       "Generics",
			Description: "Writing reusable, type-safe components",
			Category:    catalog.CategoryBasics,
			Content: `Generics let one piece of code work over many types without losing
type safety.

A type parameter (conventionally T, U, V) is declared in angle brackets
and usually inferred at the call site. Constraints with extends restrict
what types a parameter accepts. Interfaces and classes can be generic too.`,
			CodeExample: `function identity<T>(arg: T): T {
  return arg;
}

let num = identity<number>(42);
let str = identity("hello"); // T inferred as string

interface Box<T> {
  value: T;
  getValue(): T;
}

// constraint: T must have a numeric length
interface Lengthwise {
  length: number;
}

function logLength<T extends Lengthwise>(arg: T): void {
  console.log("Length: " + arg.length);
}

logLength("hello");   // 5
logLength([1, 2, 3]); // 3

class Stack<T> {
  private items: T[] = [];

  push(item: T): void {
    this.items.push(item);
  }

  pop(): T | undefined {
    return this.items.pop();
  }
}`,
			KeyPoints: []string{
				"Type parameters are declared with <T>",
				"Parameters are conventionally named T, U, V",
				"Constraints use the extends keyword",
				"Generics combine reuse with type safety",
			},
		},
		{
			ID:          "type-inference",
			Title:       "Type Inference",
			Description: "How TypeScript figures out types on its own",
			Category:    catalog.CategoryAdvanced,
			Content: `TypeScript infers types wherever it can, keeping code concise.

Variables take the type of their initializer; function return types are
inferred from the body. Arrays of mixed values get a best common type.
Contextual typing infers parameter types from where a function is used.`,
			CodeExample: `let x = 3;          // number
let y = "hello";    // string
let z = [1, 2, 3];  // number[]

function add(a: number, b: number) {
  return a + b; // return type inferred as number
}

let mixed = [1, "two", 3]; // (string | number)[]

// contextual typing
window.onmousedown = function (mouseEvent) {
  console.log(mouseEvent.clientX); // MouseEvent inferred
};

const user = {
  name: "Ada",
  age: 25,
};
// inferred as { name: string; age: number }

function createUser(name: string) {
  return { name, id: Math.random() };
  // return type: { name: string; id: number }
}`,
			KeyPoints: []string{
				"Variables are typed by their initializer",
				"Function return types can usually be omitted",
				"Contextual typing infers from the usage position",
				"Explicit annotations still help readability on public APIs",
			},
		},
		{
			ID:          "type-aliases",
			Title:       "Type Aliases",
			Description: "Naming types with the type keyword",
			Category:    catalog.CategoryAdvanced,
			Content: `A type alias names any type: primitives, unions, intersections,
functions, tuples.

Aliases are more flexible than interfaces (they can name unions and
literal types), but cannot be extended or implemented. Intersections with
& merge object types; keyof produces a union of a type's keys.`,
			CodeExample: `type ID = number | string;
type Status = "success" | "error" | "pending";

type Result<T> = { status: Status; data: T | null };

type User = {
  id: number;
  name: string;
  email: string;
  age?: number;
};

// intersection
type Employee = User & {
  employeeId: number;
  department: string;
};

// function type alias
type EventHandler = (event: Event) => void;

// template literal type
type CssProperty = ` + "`margin${\"Top\" | \"Right\" | \"Bottom\" | \"Left\"}`" + `;

// keyof
type UserKeys = keyof User; // "id" | "name" | "email" | "age"`,
			KeyPoints: []string{
				"type creates a name for any type",
				"Aliases can name unions and literal types",
				"& builds intersection types",
				"Interfaces can be extended; aliases cannot",
			},
		},
		{
			ID:          "utility-types",
			Title:       "Utility Types",
			Description: "TypeScript's built-in type transformers",
			Category:    catalog.CategoryAdvanced,
			Content: `TypeScript ships a set of utility types for transforming other types.

Partial<T> makes every property optional; Required<T> makes them all
mandatory; Readonly<T> freezes them. Pick and Omit select or drop keys;
Exclude and Extract filter unions; Record builds keyed object types;
ReturnType extracts what a function returns.`,
			CodeExample: `interface User {
  id: number;
  name: string;
  email: string;
  age?: number;
}

type PartialUser = Partial<User>;   // all optional
type FullUser = Required<User>;     // all required
type FrozenUser = Readonly<User>;   // all readonly

type Contact = Pick<User, "name" | "email">;
type WithoutID = Omit<User, "id">;

type T1 = Exclude<string | number | boolean, boolean>; // string | number
type T2 = Extract<string | number, number>;            // number

type RolePages = Record<"admin" | "user", string[]>;

function getUser() {
  return { id: 1, name: "Ada" };
}
type GetUserResult = ReturnType<typeof getUser>;`,
			KeyPoints: []string{
				"Partial, Required, and Readonly flip property modifiers",
				"Pick and Omit select or remove keys",
				"Exclude and Extract filter union members",
				"ReturnType extracts a function's return type",
			},
		},
		{
			ID:          "type-guards",
			Title:       "Type Guards",
			Description: "Narrowing types at runtime",
			Category:    catalog.CategoryAdvanced,
			Content: `Type guards are runtime checks that narrow a value's static type.

typeof narrows primitives, instanceof narrows class instances, and the in
operator checks for a property. A user-defined guard returns a type
predicate (value is T). Discriminated unions narrow on a shared literal
field.`,
			CodeExample: `function isString(value: unknown): value is string {
  return typeof value === "string";
}

function printLength(value: unknown) {
  if (isString(value)) {
    console.log(value.length); // value is string here
  }
}

// discriminated union
interface Square {
  kind: "square";
  size: number;
}

interface Circle {
  kind: "circle";
  radius: number;
}

type Shape = Square | Circle;

function area(shape: Shape): number {
  switch (shape.kind) {
    case "square":
      return shape.size * shape.size;
    case "circle":
      return Math.PI * shape.radius ** 2;
  }
}`,
			KeyPoints: []string{
				"typeof, instanceof, and in narrow types inline",
				"User-defined guards return a value is T predicate",
				"Discriminated unions narrow on a literal tag field",
				"Narrowing makes unknown safe to work with",
			},
		},
		{
			ID:          "decorators",
			Title:       "Decorators",
			Description: "Annotating and modifying classes and members",
			Category:    catalog.CategoryAdvanced,
			Content: `Decorators are functions applied to classes, methods, properties, or
parameters with the @ syntax.

Evaluation runs bottom-up and inside-out: member decorators run before the
class decorator, and stacked decorators on one declaration apply from the
bottom up.`,
			CodeExample: `function sealed(constructor: Function) {
  Object.seal(constructor);
  Object.seal(constructor.prototype);
}

function log(
  target: any,
  propertyKey: string,
  descriptor: PropertyDescriptor
) {
  const original = descriptor.value;
  descriptor.value = function (...args: any[]) {
    console.log("calling " + propertyKey);
    return original.apply(this, args);
  };
}

@sealed
class Greeter {
  constructor(private greeting: string) {}

  @log
  greet(): string {
    return "Hello, " + this.greeting;
  }
}`,
			KeyPoints: []string{
				"Decorators apply with the @ syntax",
				"Method decorators run before the class decorator",
				"Stacked decorators evaluate bottom-up",
				"Method decorators can wrap or replace the descriptor",
			},
		},
		{
			ID:          "modules",
			Title:       "Modules",
			Description: "Organizing code across files",
			Category:    catalog.CategoryAdvanced,
			Content: `Every file with a top-level import or export is a module with its own
scope.

Named exports export several bindings per file; a default export names the
module's main value. import type brings in types that are erased at
compile time. Re-exports aggregate a package's public surface in one
place.`,
			CodeExample: `// math.ts
export const PI = 3.14159;

export function add(a: number, b: number): number {
  return a + b;
}

export default class Calculator {
  add(a: number, b: number): number {
    return a + b;
  }
}

// app.ts
import Calculator, { PI, add } from "./math";
import * as math from "./math";
import type { User } from "./models"; // erased at compile time

// index.ts: re-export the public surface
export { add, PI } from "./math";
export type { User } from "./models";`,
			KeyPoints: []string{
				"Any file with import/export is a module",
				"A file has many named exports but one default export",
				"import type is erased from the compiled output",
				"Re-exports collect a package's public API",
			},
		},
	}
}
