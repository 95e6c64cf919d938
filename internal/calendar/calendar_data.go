package calendar

import "time"

// yearTable holds one entry per Bikram Sambat year, in increasing year order.
// Month lengths follow the published panchanga tables; New Year dates are the
// Gregorian day of 1 Baisakh.
var yearTable = [...]yearEntry{
	{2000, Gregorian{1943, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2001, Gregorian{1944, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2002, Gregorian{1945, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2003, Gregorian{1946, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2004, Gregorian{1947, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2005, Gregorian{1948, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2006, Gregorian{1949, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2007, Gregorian{1950, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2008, Gregorian{1951, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{2009, Gregorian{1952, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2010, Gregorian{1953, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2011, Gregorian{1954, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2012, Gregorian{1955, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2013, Gregorian{1956, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2014, Gregorian{1957, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2015, Gregorian{1958, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2016, Gregorian{1959, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2017, Gregorian{1960, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2018, Gregorian{1961, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2019, Gregorian{1962, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2020, Gregorian{1963, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2021, Gregorian{1964, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2022, Gregorian{1965, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2023, Gregorian{1966, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2024, Gregorian{1967, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2025, Gregorian{1968, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2026, Gregorian{1969, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2027, Gregorian{1970, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2028, Gregorian{1971, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2029, Gregorian{1972, time.April, 13}, [12]int{31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30}},
	{2030, Gregorian{1973, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2031, Gregorian{1974, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2032, Gregorian{1975, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2033, Gregorian{1976, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2034, Gregorian{1977, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2035, Gregorian{1978, time.April, 14}, [12]int{30, 32, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{2036, Gregorian{1979, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2037, Gregorian{1980, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2038, Gregorian{1981, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2039, Gregorian{1982, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2040, Gregorian{1983, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2041, Gregorian{1984, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2042, Gregorian{1985, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2043, Gregorian{1986, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2044, Gregorian{1987, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2045, Gregorian{1988, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2046, Gregorian{1989, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2047, Gregorian{1990, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2048, Gregorian{1991, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2049, Gregorian{1992, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2050, Gregorian{1993, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2051, Gregorian{1994, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2052, Gregorian{1995, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2053, Gregorian{1996, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2054, Gregorian{1997, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2055, Gregorian{1998, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2056, Gregorian{1999, time.April, 14}, [12]int{31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30}},
	{2057, Gregorian{2000, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2058, Gregorian{2001, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2059, Gregorian{2002, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2060, Gregorian{2003, time.April, 14}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2061, Gregorian{2004, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2062, Gregorian{2005, time.April, 14}, [12]int{30, 32, 31, 32, 31, 31, 29, 30, 29, 30, 29, 31}},
	{2063, Gregorian{2006, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2064, Gregorian{2007, time.April, 14}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2065, Gregorian{2008, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2066, Gregorian{2009, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{2067, Gregorian{2010, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2068, Gregorian{2011, time.April, 14}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2069, Gregorian{2012, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2070, Gregorian{2013, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2071, Gregorian{2014, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2072, Gregorian{2015, time.April, 14}, [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2073, Gregorian{2016, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2074, Gregorian{2017, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2075, Gregorian{2018, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2076, Gregorian{2019, time.April, 14}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2077, Gregorian{2020, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2078, Gregorian{2021, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2079, Gregorian{2022, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2080, Gregorian{2023, time.April, 14}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2081, Gregorian{2024, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2082, Gregorian{2025, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2083, Gregorian{2026, time.April, 14}, [12]int{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2084, Gregorian{2027, time.April, 14}, [12]int{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2085, Gregorian{2028, time.April, 13}, [12]int{31, 32, 31, 32, 30, 31, 30, 30, 29, 30, 30, 30}},
	{2086, Gregorian{2029, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2087, Gregorian{2030, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30}},
	{2088, Gregorian{2031, time.April, 15}, [12]int{30, 31, 32, 32, 30, 31, 30, 30, 29, 30, 30, 30}},
	{2089, Gregorian{2032, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2090, Gregorian{2033, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
}
