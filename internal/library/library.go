// Package library is the lending example: books with a number of available
// copies, registered readers, and a Library that lends and takes back copies.
package library

import (
	"fmt"

	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
)

type Book struct {
	Title  string
	Author string
	ISBN   string
	// Copies is the number of copies currently on the shelf.
	Copies int
}

func NewBook(title, author, isbn string, copies int) *Book {
	return &Book{Title: title, Author: author, ISBN: isbn, Copies: copies}
}

type Reader struct {
	Name string
	ID   int
}

func NewReader(name string, id int) *Reader {
	return &Reader{Name: name, ID: id}
}

// Library keeps its catalogue and readers in insertion order.
type Library struct {
	books   []*Book
	readers []*Reader
	out     sink.Sink
}

func New(out sink.Sink) *Library {
	return &Library{out: out}
}

func (l *Library) AddBook(book *Book) {
	l.books = append(l.books, book)
}

// RemoveBook drops the first occurrence of book. Unknown books are ignored.
func (l *Library) RemoveBook(book *Book) {
	l.books = removeFirst(l.books, book)
}

func (l *Library) RegisterReader(reader *Reader) {
	l.readers = append(l.readers, reader)
}

// RemoveReader drops the first occurrence of reader. Unknown readers are
// ignored.
func (l *Library) RemoveReader(reader *Reader) {
	l.readers = removeFirst(l.readers, reader)
}

// FindBook returns the first book with the given ISBN.
func (l *Library) FindBook(isbn string) (*Book, bool) {
	for _, b := range l.books {
		if b.ISBN == isbn {
			return b, true
		}
	}
	return nil, false
}

// LendBook takes one copy off the shelf for the reader. It reports false and
// leaves the catalogue untouched when the book is unknown or has no copies
// left. The reader id is not checked against registered readers.
func (l *Library) LendBook(isbn string, readerID int) bool {
	book, ok := l.FindBook(isbn)
	if !ok || book.Copies <= 0 {
		l.out.Write(fmt.Sprintf("No copies of %s available", isbn))
		return false
	}
	book.Copies--
	l.out.Write(fmt.Sprintf("Book '%s' lent to reader %d", book.Title, readerID))
	return true
}

// ReturnBook puts one copy back on the shelf.
func (l *Library) ReturnBook(isbn string, readerID int) bool {
	book, ok := l.FindBook(isbn)
	if !ok {
		l.out.Write(fmt.Sprintf("Book %s not found", isbn))
		return false
	}
	book.Copies++
	l.out.Write(fmt.Sprintf("Book '%s' returned by reader %d", book.Title, readerID))
	return true
}

func (l *Library) ListBooks() {
	for _, b := range l.books {
		l.out.Write(fmt.Sprintf("Title: %s, Author: %s, ISBN: %s, Copies: %d", b.Title, b.Author, b.ISBN, b.Copies))
	}
}

func (l *Library) ListReaders() {
	for _, r := range l.readers {
		l.out.Write(fmt.Sprintf("Name: %s, ID: %d", r.Name, r.ID))
	}
}

func (l *Library) Books() []*Book {
	return append([]*Book(nil), l.books...)
}

func (l *Library) Readers() []*Reader {
	return append([]*Reader(nil), l.readers...)
}

func removeFirst[T comparable](items []T, target T) []T {
	for i, item := range items {
		if item == target {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}
