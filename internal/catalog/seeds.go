package catalog

import "digilib/internal/models"

// seedEntry is one bibliographic record. Each seed is expanded into
// variantsPerSeed catalog records by the generator.
type seedEntry struct {
	title  string
	author string
	year   int
	pages  int
	rating float64
	pdfURL string
}

// categorySeed bundles a category's seed list with its cover palette,
// description template and variant-flag thresholds.
type categorySeed struct {
	category models.Category

	// descriptionFmt takes the author name.
	descriptionFmt string

	// unavailableProb is the probability that a generated variant is
	// marked unavailable.
	unavailableProb float64

	// trendingTop / popularTop: seeds below these indexes contribute a
	// trending (variant 0) or popular (variant 1) record.
	trendingTop int
	popularTop  int

	images  []string
	entries []seedEntry
}

func categorySeeds() []categorySeed {
	return []categorySeed{fictionSeed, scienceSeed, historySeed, technologySeed, childrenSeed}
}

var fictionSeed = categorySeed{
	category:        models.CategoryFiction,
	descriptionFmt:  "Karya klasik dari %s yang telah menginspirasi generasi pembaca.",
	unavailableProb: 0.2,
	trendingTop:     5,
	popularTop:      8,
	images: []string{
		"https://images.unsplash.com/photo-1679180174039-c84e26f1a78d?w=400",
		"https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
		"https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=400",
		"https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400",
		"https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=400",
		"https://images.unsplash.com/photo-1481349518771-20055b2a7b24?w=400",
		"https://images.unsplash.com/photo-1491841651911-c44c30c34548?w=400",
	},
	entries: []seedEntry{
		{"Pride and Prejudice", "Jane Austen", 1813, 279, 4.9, "https://www.gutenberg.org/files/1342/1342-h/1342-h.htm"},
		{"The Great Gatsby", "F. Scott Fitzgerald", 1925, 180, 4.8, "https://www.planetebook.com/free-ebooks/the-great-gatsby.pdf"},
		{"Frankenstein", "Mary Shelley", 1818, 280, 4.7, "https://www.planetebook.com/free-ebooks/frankenstein.pdf"},
		{"Dracula", "Bram Stoker", 1897, 418, 4.6, "https://www.gutenberg.org/files/345/345-h/345-h.htm"},
		{"Jane Eyre", "Charlotte Brontë", 1847, 532, 4.8, "https://www.gutenberg.org/files/1260/1260-h/1260-h.htm"},
		{"Wuthering Heights", "Emily Brontë", 1847, 416, 4.5, "https://www.gutenberg.org/files/768/768-h/768-h.htm"},
		{"The Picture of Dorian Gray", "Oscar Wilde", 1890, 254, 4.7, "https://www.gutenberg.org/files/174/174-h/174-h.htm"},
		{"Moby Dick", "Herman Melville", 1851, 635, 4.4, "https://www.gutenberg.org/files/2701/2701-h/2701-h.htm"},
		{"The Adventures of Tom Sawyer", "Mark Twain", 1876, 274, 4.6, "https://www.gutenberg.org/files/74/74-h/74-h.htm"},
		{"Adventures of Huckleberry Finn", "Mark Twain", 1884, 366, 4.7, "https://www.gutenberg.org/files/76/76-h/76-h.htm"},
		{"The Scarlet Letter", "Nathaniel Hawthorne", 1850, 238, 4.3, "https://www.gutenberg.org/files/25344/25344-h/25344-h.htm"},
		{"The Count of Monte Cristo", "Alexandre Dumas", 1844, 1276, 4.9, "https://www.gutenberg.org/files/1184/1184-h/1184-h.htm"},
		{"Les Misérables", "Victor Hugo", 1862, 1463, 4.8, "https://www.gutenberg.org/files/135/135-h/135-h.htm"},
		{"War and Peace", "Leo Tolstoy", 1869, 1225, 4.9, "https://www.gutenberg.org/files/2600/2600-h/2600-h.htm"},
		{"Anna Karenina", "Leo Tolstoy", 1877, 864, 4.8, "https://www.gutenberg.org/files/1399/1399-h/1399-h.htm"},
		{"Crime and Punishment", "Fyodor Dostoevsky", 1866, 671, 4.9, "https://www.gutenberg.org/files/2554/2554-h/2554-h.htm"},
		{"The Brothers Karamazov", "Fyodor Dostoevsky", 1880, 796, 4.8, "https://www.gutenberg.org/files/28054/28054-h/28054-h.htm"},
		{"The Idiot", "Fyodor Dostoevsky", 1869, 656, 4.7, "https://www.gutenberg.org/files/2638/2638-h/2638-h.htm"},
		{"Don Quixote", "Miguel de Cervantes", 1605, 1072, 4.6, "https://www.gutenberg.org/files/996/996-h/996-h.htm"},
		{"The Odyssey", "Homer", -800, 541, 4.7, "https://www.gutenberg.org/files/1727/1727-h/1727-h.htm"},
		{"The Iliad", "Homer", -750, 683, 4.6, "https://www.gutenberg.org/files/6130/6130-h/6130-h.htm"},
		{"The Divine Comedy", "Dante Alighieri", 1320, 798, 4.8, "https://www.gutenberg.org/files/8800/8800-h/8800-h.htm"},
		{"Paradise Lost", "John Milton", 1667, 453, 4.5, "https://www.gutenberg.org/files/26/26-h/26-h.htm"},
		{"The Canterbury Tales", "Geoffrey Chaucer", 1400, 504, 4.4, "https://www.gutenberg.org/files/2383/2383-h/2383-h.htm"},
		{"Gulliver's Travels", "Jonathan Swift", 1726, 306, 4.5, "https://www.gutenberg.org/files/829/829-h/829-h.htm"},
		{"Robinson Crusoe", "Daniel Defoe", 1719, 320, 4.4, "https://www.gutenberg.org/files/521/521-h/521-h.htm"},
		{"Oliver Twist", "Charles Dickens", 1838, 608, 4.6, "https://www.gutenberg.org/files/730/730-h/730-h.htm"},
		{"Great Expectations", "Charles Dickens", 1861, 544, 4.7, "https://www.gutenberg.org/files/1400/1400-h/1400-h.htm"},
		{"A Tale of Two Cities", "Charles Dickens", 1859, 448, 4.8, "https://www.gutenberg.org/files/98/98-h/98-h.htm"},
		{"David Copperfield", "Charles Dickens", 1850, 882, 4.6, "https://www.gutenberg.org/files/766/766-h/766-h.htm"},
		{"Little Women", "Louisa May Alcott", 1868, 759, 4.7, "https://www.gutenberg.org/files/514/514-h/514-h.htm"},
		{"The Adventures of Sherlock Holmes", "Arthur Conan Doyle", 1892, 307, 4.8, "https://www.gutenberg.org/files/1661/1661-h/1661-h.htm"},
		{"The Hound of the Baskervilles", "Arthur Conan Doyle", 1902, 256, 4.7, "https://www.gutenberg.org/files/2852/2852-h/2852-h.htm"},
		{"The Time Machine", "H.G. Wells", 1895, 118, 4.5, "https://www.gutenberg.org/files/35/35-h/35-h.htm"},
		{"The War of the Worlds", "H.G. Wells", 1898, 192, 4.6, "https://www.gutenberg.org/files/36/36-h/36-h.htm"},
		{"The Invisible Man", "H.G. Wells", 1897, 190, 4.4, "https://www.gutenberg.org/files/5230/5230-h/5230-h.htm"},
		{"Twenty Thousand Leagues Under the Sea", "Jules Verne", 1870, 335, 4.6, "https://www.gutenberg.org/files/164/164-h/164-h.htm"},
		{"Around the World in Eighty Days", "Jules Verne", 1873, 167, 4.5, "https://www.gutenberg.org/files/103/103-h/103-h.htm"},
		{"Journey to the Center of the Earth", "Jules Verne", 1864, 240, 4.4, "https://www.gutenberg.org/files/18857/18857-h/18857-h.htm"},
		{"The Three Musketeers", "Alexandre Dumas", 1844, 625, 4.7, "https://www.gutenberg.org/files/1257/1257-h/1257-h.htm"},
		{"Treasure Island", "Robert Louis Stevenson", 1883, 292, 4.6, "https://www.gutenberg.org/files/120/120-h/120-h.htm"},
		{"The Strange Case of Dr. Jekyll and Mr. Hyde", "Robert Louis Stevenson", 1886, 96, 4.5, "https://www.gutenberg.org/files/43/43-h/43-h.htm"},
		{"Heart of Darkness", "Joseph Conrad", 1899, 72, 4.3, "https://www.gutenberg.org/files/219/219-h/219-h.htm"},
		{"The Secret Garden", "Frances Hodgson Burnett", 1911, 331, 4.7, "https://www.gutenberg.org/files/113/113-h/113-h.htm"},
		{"Anne of Green Gables", "Lucy Maud Montgomery", 1908, 388, 4.8, "https://www.gutenberg.org/files/45/45-h/45-h.htm"},
		{"The Jungle Book", "Rudyard Kipling", 1894, 260, 4.6, "https://www.gutenberg.org/files/236/236-h/236-h.htm"},
		{"Kim", "Rudyard Kipling", 1901, 368, 4.5, "https://www.gutenberg.org/files/2226/2226-h/2226-h.htm"},
		{"The Call of the Wild", "Jack London", 1903, 232, 4.6, "https://www.gutenberg.org/files/215/215-h/215-h.htm"},
		{"White Fang", "Jack London", 1906, 298, 4.5, "https://www.gutenberg.org/files/910/910-h/910-h.htm"},
		{"The Age of Innocence", "Edith Wharton", 1920, 360, 4.4, "https://www.gutenberg.org/files/541/541-h/541-h.htm"},
	},
}

var scienceSeed = categorySeed{
	category:        models.CategoryScience,
	descriptionFmt:  "Eksplorasi mendalam tentang sains dan penemuan ilmiah dari %s.",
	unavailableProb: 0.2,
	trendingTop:     3,
	popularTop:      5,
	images: []string{
		"https://images.unsplash.com/photo-1725869973689-425c74f79a48?w=400",
		"https://images.unsplash.com/photo-1532012197267-da84d127e765?w=400",
		"https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=400",
		"https://images.unsplash.com/photo-1589998059171-988d887df646?w=400",
		"https://images.unsplash.com/photo-1507413245164-6160d8298b31?w=400",
		"https://images.unsplash.com/photo-1518152006812-edab29b069ac?w=400",
		"https://images.unsplash.com/photo-1516339901601-2e1b62dc0c45?w=400",
	},
	entries: []seedEntry{
		{"On the Origin of Species", "Charles Darwin", 1859, 502, 4.9, "https://www.gutenberg.org/files/1228/1228-h/1228-h.htm"},
		{"The Voyage of the Beagle", "Charles Darwin", 1839, 524, 4.7, "https://www.gutenberg.org/files/944/944-h/944-h.htm"},
		{"Relativity: The Special and General Theory", "Albert Einstein", 1916, 168, 4.8, "https://www.gutenberg.org/files/30155/30155-pdf.pdf"},
		{"The Autobiography of Charles Darwin", "Charles Darwin", 1887, 89, 4.6, "https://www.gutenberg.org/files/2010/2010-h/2010-h.htm"},
		{"The Expression of Emotion", "Charles Darwin", 1872, 374, 4.5, "https://www.gutenberg.org/files/1227/1227-h/1227-h.htm"},
		{"The Descent of Man", "Charles Darwin", 1871, 423, 4.7, "https://www.gutenberg.org/files/2300/2300-h/2300-h.htm"},
		{"A Brief History of Time", "Stephen Hawking", 1988, 256, 4.8, ""},
		{"Cosmos", "Carl Sagan", 1980, 365, 4.9, ""},
		{"The Selfish Gene", "Richard Dawkins", 1976, 360, 4.7, ""},
		{"The Structure of Scientific Revolutions", "Thomas Kuhn", 1962, 212, 4.6, ""},
		{"The Double Helix", "James Watson", 1968, 226, 4.5, ""},
		{"Silent Spring", "Rachel Carson", 1962, 378, 4.8, ""},
		{"The Origin of Life", "Alexander Oparin", 1936, 270, 4.4, ""},
		{"Principia Mathematica", "Isaac Newton", 1687, 974, 4.9, ""},
		{"The Feynman Lectures on Physics", "Richard Feynman", 1964, 1552, 4.9, ""},
		{"QED: The Strange Theory", "Richard Feynman", 1985, 158, 4.7, ""},
		{"The First Three Minutes", "Steven Weinberg", 1977, 203, 4.6, ""},
		{"The Elegant Universe", "Brian Greene", 1999, 448, 4.5, ""},
		{"A Short History of Nearly Everything", "Bill Bryson", 2003, 544, 4.8, ""},
		{"The Demon-Haunted World", "Carl Sagan", 1995, 457, 4.7, ""},
		{"The Greatest Show on Earth", "Richard Dawkins", 2009, 470, 4.6, ""},
		{"The Third Chimpanzee", "Jared Diamond", 1991, 407, 4.5, ""},
		{"Guns, Germs, and Steel", "Jared Diamond", 1997, 498, 4.7, ""},
		{"The Language Instinct", "Steven Pinker", 1994, 525, 4.6, ""},
		{"How the Mind Works", "Steven Pinker", 1997, 660, 4.5, ""},
		{"The Blank Slate", "Steven Pinker", 2002, 528, 4.6, ""},
		{"Genome", "Matt Ridley", 1999, 344, 4.4, ""},
		{"The Red Queen", "Matt Ridley", 1993, 405, 4.5, ""},
		{"The Man Who Mistook His Wife for a Hat", "Oliver Sacks", 1985, 233, 4.7, ""},
		{"The Emperor of All Maladies", "Siddhartha Mukherjee", 2010, 571, 4.8, ""},
	},
}

var historySeed = categorySeed{
	category:        models.CategoryHistory,
	descriptionFmt:  "Analisis mendalam tentang peristiwa sejarah penting dari %s.",
	unavailableProb: 0.2,
	trendingTop:     3,
	popularTop:      4,
	images: []string{
		"https://images.unsplash.com/photo-1613324767976-f65bc7d80936?w=400",
		"https://images.unsplash.com/photo-1461360370896-922624d12aa1?w=400",
		"https://images.unsplash.com/photo-1509021436665-8f07dbf5bf1d?w=400",
		"https://images.unsplash.com/photo-1585241936614-83b20e3d8b6e?w=400",
		"https://images.unsplash.com/photo-1568667256549-094345857637?w=400",
		"https://images.unsplash.com/photo-1519682577862-22b62b24e493?w=400",
		"https://images.unsplash.com/photo-1524995997946-a1c2e315a42f?w=400",
	},
	entries: []seedEntry{
		{"The Histories", "Herodotus", -440, 716, 4.8, "https://www.gutenberg.org/files/2707/2707-h/2707-h.htm"},
		{"The Art of War", "Sun Tzu", -500, 273, 4.9, "https://www.gutenberg.org/files/132/132-h/132-h.htm"},
		{"The History of the Decline and Fall of the Roman Empire", "Edward Gibbon", 1776, 3600, 4.6, "https://www.gutenberg.org/files/25717/25717-h/25717-h.htm"},
		{"The Peloponnesian War", "Thucydides", -400, 648, 4.7, "https://www.gutenberg.org/files/7142/7142-h/7142-h.htm"},
		{"Parallel Lives", "Plutarch", 100, 1200, 4.6, "https://www.gutenberg.org/files/674/674-h/674-h.htm"},
		{"Commentaries on the Gallic War", "Julius Caesar", -58, 308, 4.5, "https://www.gutenberg.org/files/10657/10657-h/10657-h.htm"},
		{"The Annals", "Tacitus", 109, 543, 4.7, "https://www.gutenberg.org/files/15021/15021-h/15021-h.htm"},
		{"Meditations", "Marcus Aurelius", 180, 254, 4.8, "https://www.gutenberg.org/files/2680/2680-h/2680-h.htm"},
		{"The Prince", "Niccolò Machiavelli", 1532, 140, 4.6, "https://www.gutenberg.org/files/1232/1232-h/1232-h.htm"},
		{"The History of the World", "H.G. Wells", 1920, 1324, 4.5, "https://www.gutenberg.org/files/35461/35461-h/35461-h.htm"},
		{"A History of the English-Speaking Peoples", "Winston Churchill", 1956, 2000, 4.7, ""},
		{"The Guns of August", "Barbara Tuchman", 1962, 511, 4.8, ""},
		{"A Distant Mirror", "Barbara Tuchman", 1978, 677, 4.6, ""},
		{"The Rise and Fall of the Third Reich", "William Shirer", 1960, 1249, 4.7, ""},
		{"Sapiens", "Yuval Noah Harari", 2011, 443, 4.9, ""},
		{"Homo Deus", "Yuval Noah Harari", 2015, 440, 4.7, ""},
		{"21 Lessons for the 21st Century", "Yuval Noah Harari", 2018, 372, 4.6, ""},
		{"The Silk Roads", "Peter Frankopan", 2015, 636, 4.5, ""},
		{"1776", "David McCullough", 2005, 386, 4.7, ""},
		{"John Adams", "David McCullough", 2001, 751, 4.8, ""},
		{"Team of Rivals", "Doris Kearns Goodwin", 2005, 944, 4.7, ""},
		{"The Diary of a Young Girl", "Anne Frank", 1947, 283, 4.9, ""},
	},
}

var technologySeed = categorySeed{
	category:        models.CategoryTechnology,
	descriptionFmt:  "Panduan komprehensif teknologi dan pemrograman dari %s.",
	unavailableProb: 0.2,
	trendingTop:     4,
	popularTop:      6,
	images: []string{
		"https://images.unsplash.com/photo-1613253932202-686cbcd993b0?w=400",
		"https://images.unsplash.com/photo-1518770660439-4636190af475?w=400",
		"https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?w=400",
		"https://images.unsplash.com/photo-1510511459019-5dda7724fd87?w=400",
		"https://images.unsplash.com/photo-1550751827-4bd374c3f58b?w=400",
		"https://images.unsplash.com/photo-1516116216624-53e697fedbea?w=400",
		"https://images.unsplash.com/photo-1515879218367-8466d910aaa4?w=400",
	},
	entries: []seedEntry{
		{"Structure and Interpretation of Computer Programs", "Abelson & Sussman", 1985, 657, 4.9, "https://web.mit.edu/6.001/6.037/sicp.pdf"},
		{"Introduction to Information Retrieval", "Manning, Raghavan, Schütze", 2008, 482, 4.7, "https://nlp.stanford.edu/IR-book/pdf/irbookonlinereading.pdf"},
		{"The Elements of Computing Systems", "Noam Nisan & Shimon Schocken", 2005, 325, 4.8, ""},
		{"Clean Code", "Robert C. Martin", 2008, 464, 4.8, ""},
		{"The Pragmatic Programmer", "Hunt & Thomas", 1999, 352, 4.9, ""},
		{"Code Complete", "Steve McConnell", 1993, 960, 4.7, ""},
		{"Design Patterns", "Gang of Four", 1994, 416, 4.6, ""},
		{"Introduction to Algorithms", "Cormen et al.", 1990, 1312, 4.8, ""},
		{"The Art of Computer Programming", "Donald Knuth", 1968, 650, 4.9, ""},
		{"Artificial Intelligence: A Modern Approach", "Russell & Norvig", 1995, 1152, 4.8, ""},
		{"Deep Learning", "Goodfellow, Bengio, Courville", 2016, 800, 4.7, ""},
		{"The Mythical Man-Month", "Frederick Brooks", 1975, 336, 4.6, ""},
		{"Refactoring", "Martin Fowler", 1999, 448, 4.7, ""},
		{"Domain-Driven Design", "Eric Evans", 2003, 560, 4.6, ""},
		{"Peopleware", "DeMarco & Lister", 1987, 245, 4.5, ""},
		{"The Phoenix Project", "Gene Kim", 2013, 345, 4.7, ""},
		{"Accelerate", "Forsgren, Humble, Kim", 2018, 288, 4.6, ""},
		{"Site Reliability Engineering", "Google", 2016, 550, 4.8, ""},
		{"Computer Networks", "Andrew Tanenbaum", 1981, 891, 4.7, ""},
		{"Operating Systems", "Silberschatz", 1983, 944, 4.6, ""},
		{"Database System Concepts", "Silberschatz et al.", 1986, 1376, 4.5, ""},
		{"Compilers", "Aho, Lam, Sethi, Ullman", 1986, 1035, 4.7, ""},
		{"Computer Architecture", "Hennessy & Patterson", 1990, 856, 4.8, ""},
		{"The C Programming Language", "Kernighan & Ritchie", 1978, 272, 4.9, ""},
		{"JavaScript: The Good Parts", "Douglas Crockford", 2008, 176, 4.5, ""},
		{"Effective Java", "Joshua Bloch", 2001, 416, 4.8, ""},
		{"Python Crash Course", "Eric Matthes", 2015, 560, 4.7, ""},
		{"The Innovators", "Walter Isaacson", 2014, 560, 4.6, ""},
		{"The Soul of A New Machine", "Tracy Kidder", 1981, 293, 4.5, ""},
		{"Hackers", "Steven Levy", 1984, 458, 4.7, ""},
		{"The Cathedral and the Bazaar", "Eric Raymond", 1999, 241, 4.4, ""},
		{"The Lean Startup", "Eric Ries", 2011, 336, 4.6, ""},
	},
}

var childrenSeed = categorySeed{
	category:        models.CategoryChildren,
	descriptionFmt:  "Cerita menarik dan penuh imajinasi untuk anak-anak dari %s.",
	unavailableProb: 0.15,
	trendingTop:     5,
	popularTop:      8,
	images: []string{
		"https://images.unsplash.com/photo-1631426964394-06606872d836?w=400",
		"https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
		"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
		"https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400",
		"https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=400",
		"https://images.unsplash.com/photo-1513001900722-370f803f498d?w=400",
		"https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=400",
	},
	entries: []seedEntry{
		{"Alice's Adventures in Wonderland", "Lewis Carroll", 1865, 96, 4.8, "https://www.gutenberg.org/files/11/11-h/11-h.htm"},
		{"The Tale of Peter Rabbit", "Beatrix Potter", 1902, 72, 4.9, "https://www.gutenberg.org/files/14838/14838-h/14838-h.htm"},
		{"The Wonderful Wizard of Oz", "L. Frank Baum", 1900, 259, 4.8, "https://www.gutenberg.org/files/55/55-h/55-h.htm"},
		{"The Adventures of Pinocchio", "Carlo Collodi", 1883, 206, 4.7, "https://www.gutenberg.org/files/500/500-h/500-h.htm"},
		{"Aesop's Fables", "Aesop", -600, 306, 4.9, "https://www.gutenberg.org/files/11339/11339-h/11339-h.htm"},
		{"Grimm's Fairy Tales", "Brothers Grimm", 1812, 584, 4.8, "https://www.gutenberg.org/files/2591/2591-h/2591-h.htm"},
		{"Hans Christian Andersen's Fairy Tales", "Hans Christian Andersen", 1835, 428, 4.9, "https://www.gutenberg.org/files/1597/1597-h/1597-h.htm"},
		{"The Wind in the Willows", "Kenneth Grahame", 1908, 272, 4.7, "https://www.gutenberg.org/files/289/289-h/289-h.htm"},
		{"Peter Pan", "J.M. Barrie", 1911, 207, 4.8, "https://www.gutenberg.org/files/16/16-h/16-h.htm"},
		{"The Velveteen Rabbit", "Margery Williams", 1922, 32, 4.9, "https://www.gutenberg.org/files/11757/11757-h/11757-h.htm"},
		{"Charlotte's Web", "E.B. White", 1952, 184, 4.9, ""},
		{"Where the Wild Things Are", "Maurice Sendak", 1963, 48, 4.8, ""},
		{"The Cat in the Hat", "Dr. Seuss", 1957, 61, 4.8, ""},
		{"Green Eggs and Ham", "Dr. Seuss", 1960, 62, 4.9, ""},
		{"Goodnight Moon", "Margaret Wise Brown", 1947, 32, 4.8, ""},
		{"The Very Hungry Caterpillar", "Eric Carle", 1969, 26, 4.9, ""},
		{"Brown Bear, Brown Bear", "Bill Martin Jr.", 1967, 28, 4.8, ""},
		{"Corduroy", "Don Freeman", 1968, 32, 4.7, ""},
		{"Make Way for Ducklings", "Robert McCloskey", 1941, 68, 4.8, ""},
		{"Curious George", "H.A. Rey", 1941, 56, 4.7, ""},
		{"Harold and the Purple Crayon", "Crockett Johnson", 1955, 64, 4.6, ""},
		{"Madeline", "Ludwig Bemelmans", 1939, 56, 4.7, ""},
		{"The Little Prince", "Antoine de Saint-Exupéry", 1943, 96, 4.9, "https://www.gutenberg.org/files/13635/13635-h/13635-h.htm"},
		{"Winnie-the-Pooh", "A.A. Milne", 1926, 161, 4.8, ""},
		{"The House at Pooh Corner", "A.A. Milne", 1928, 180, 4.7, ""},
		{"The Chronicles of Narnia", "C.S. Lewis", 1950, 767, 4.9, ""},
		{"Harry Potter and the Philosopher's Stone", "J.K. Rowling", 1997, 223, 4.9, ""},
		{"Matilda", "Roald Dahl", 1988, 240, 4.8, ""},
		{"Charlie and the Chocolate Factory", "Roald Dahl", 1964, 176, 4.8, ""},
		{"The BFG", "Roald Dahl", 1982, 208, 4.7, ""},
		{"James and the Giant Peach", "Roald Dahl", 1961, 160, 4.7, ""},
		{"Fantastic Mr. Fox", "Roald Dahl", 1970, 96, 4.6, ""},
		{"The Gruffalo", "Julia Donaldson", 1999, 32, 4.9, ""},
		{"Room on the Broom", "Julia Donaldson", 2001, 32, 4.8, ""},
		{"The Snail and the Whale", "Julia Donaldson", 2003, 32, 4.7, ""},
		{"Guess How Much I Love You", "Sam McBratney", 1994, 32, 4.9, ""},
		{"Love You Forever", "Robert Munsch", 1986, 32, 4.8, ""},
		{"The Giving Tree", "Shel Silverstein", 1964, 64, 4.7, ""},
		{"Where the Sidewalk Ends", "Shel Silverstein", 1974, 176, 4.8, ""},
		{"A Light in the Attic", "Shel Silverstein", 1981, 167, 4.7, ""},
		{"If You Give a Mouse a Cookie", "Laura Numeroff", 1985, 40, 4.8, ""},
		{"The Rainbow Fish", "Marcus Pfister", 1992, 32, 4.6, ""},
		{"Chicka Chicka Boom Boom", "Bill Martin Jr.", 1989, 36, 4.7, ""},
		{"Llama Llama Red Pajama", "Anna Dewdney", 2005, 40, 4.8, ""},
		{"Don't Let the Pigeon Drive the Bus!", "Mo Willems", 2003, 40, 4.7, ""},
		{"Olivia", "Ian Falconer", 2000, 40, 4.6, ""},
	},
}
